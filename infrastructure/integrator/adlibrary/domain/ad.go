package domain

// Ad é o registro bruto de anúncio como retornado pela fonte externa de
// biblioteca de anúncios. Datas chegam como strings YYYY-MM-DD e podem vir
// vazias ou malformadas; a normalização acontece no integrador.
type Ad struct {
	AdArchiveID  string            `json:"ad_archive_id"`
	PageID       string            `json:"page_id"`
	PageName     string            `json:"page_name"`
	LinkURL      string            `json:"link_url"`
	StartDate    string            `json:"start_date"`
	EndDate      string            `json:"end_date"`
	CreationDate string            `json:"creation_date"`
	Media        map[string]string `json:"media"`
}

// FetchResponse é o envelope da resposta da fonte.
type FetchResponse struct {
	Data   []Ad   `json:"data"`
	Count  int    `json:"count"`
	Paging Paging `json:"paging"`
}

type Paging struct {
	Cursors Cursors `json:"cursors"`
	Next    string  `json:"next"`
}

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}
