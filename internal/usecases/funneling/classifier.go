package funneling

import (
	"net/url"
	"sort"
	"strings"

	"github.com/vfg2006/competitor-ads-api/internal/domain"
)

// FunnelURL é uma URL de destino já analisada e normalizada. Normalized é a
// chave de agrupamento do sumário de funil: parâmetros de tracking removidos
// e os restantes ordenados, para que variação cosmética não fragmente linhas.
type FunnelURL struct {
	Normalized string
	Domain     string
	Path       string
	query      url.Values // query original, antes da remoção de tracking
}

// rule é uma entrada da tabela de políticas de classificação. A tabela é
// avaliada em ordem, primeira regra que casar vence; novas categorias entram
// como novas linhas da tabela, sem tocar na agregação.
type rule struct {
	funnelType   domain.FunnelType
	hosts        []string // host exato (sem www)
	hostSuffixes []string // sufixo de host, ex: ".onelink.me"
	pathTokens   []string // segmento de path
	queryParams  []string // presença de qualquer um destes parâmetros
	anyHost      bool     // casa qualquer host "público" (com TLD)
}

var classificationRules = []rule{
	{
		funnelType: domain.FunnelTypeTrackingLink,
		hosts: []string{
			"bit.ly", "tinyurl.com", "t.co", "cutt.ly", "rebrand.ly",
			"linktr.ee", "lnk.to", "l.instagram.com", "l.facebook.com",
		},
		hostSuffixes: []string{".onelink.me", ".page.link", ".app.link"},
		queryParams:  []string{"url", "u", "dest", "target", "redirect"},
	},
	{
		funnelType: domain.FunnelTypeAppStore,
		hosts:      []string{"apps.apple.com", "itunes.apple.com", "play.google.com"},
	},
	{
		funnelType: domain.FunnelTypeQuizFunnel,
		pathTokens: []string{"quiz", "survey", "questionario", "assessment"},
	},
	{
		funnelType: domain.FunnelTypeLandingPage,
		anyHost:    true,
	},
}

// trackingParams são removidos da URL normalizada: identificam o clique, não
// o destino.
var trackingParams = map[string]struct{}{
	"fbclid": {}, "gclid": {}, "ttclid": {}, "msclkid": {}, "twclid": {},
	"igshid": {}, "ref": {}, "mc_cid": {}, "mc_eid": {},
}

// campaignParams é o allow-list de parâmetros copiados verbatim para o
// campaign_info do sumário; o resto é descartado em silêncio.
var campaignParams = []string{
	"utm_source", "utm_medium", "utm_campaign", "utm_term", "utm_content",
	"utm_id", "campaign_id", "adset_id", "ad_id",
}

// Normalize analisa uma URL de destino bruta. Erro significa que o anúncio
// fica fora do sumário de funil (mas continua no sumário de criativos).
func Normalize(raw string) (*FunnelURL, error) {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, err
	}

	if parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return nil, &url.Error{Op: "normalize", URL: raw, Err: url.InvalidHostError(parsed.Host)}
	}

	host := strings.ToLower(parsed.Hostname())
	host = strings.TrimPrefix(host, "www.")

	originalQuery := parsed.Query()

	kept := url.Values{}
	for key, values := range originalQuery {
		if isTrackingParam(key) {
			continue
		}
		kept[key] = values
	}

	normalized := &url.URL{
		Scheme:   "https",
		Host:     host,
		Path:     strings.TrimSuffix(parsed.EscapedPath(), "/"),
		RawQuery: encodeSorted(kept),
	}

	return &FunnelURL{
		Normalized: normalized.String(),
		Domain:     host,
		Path:       normalized.Path,
		query:      originalQuery,
	}, nil
}

// Classify resolve o tipo de funil pela tabela de regras. Ambiguidade nunca é
// erro: sem regra casando, o resultado é unknown.
func Classify(u *FunnelURL) domain.FunnelType {
	if u == nil {
		return domain.FunnelTypeUnknown
	}

	for _, r := range classificationRules {
		if r.matches(u) {
			return r.funnelType
		}
	}

	return domain.FunnelTypeUnknown
}

// CampaignInfo extrai os parâmetros de campanha permitidos da query original.
func CampaignInfo(u *FunnelURL) map[string]string {
	info := map[string]string{}
	if u == nil {
		return info
	}

	for _, key := range campaignParams {
		if value := u.query.Get(key); value != "" {
			info[key] = value
		}
	}

	return info
}

func (r rule) matches(u *FunnelURL) bool {
	for _, host := range r.hosts {
		if u.Domain == host {
			return true
		}
	}

	for _, suffix := range r.hostSuffixes {
		if strings.HasSuffix(u.Domain, suffix) {
			return true
		}
	}

	if len(r.pathTokens) > 0 {
		for _, segment := range strings.Split(strings.ToLower(u.Path), "/") {
			for _, token := range r.pathTokens {
				if segment == token {
					return true
				}
			}
		}
	}

	for _, param := range r.queryParams {
		if u.query.Has(param) {
			return true
		}
	}

	if r.anyHost && isPublicHost(u.Domain) {
		return true
	}

	return false
}

func isTrackingParam(key string) bool {
	if strings.HasPrefix(strings.ToLower(key), "utm_") {
		return true
	}

	_, found := trackingParams[strings.ToLower(key)]
	return found
}

// isPublicHost exige um TLD alfabético: hosts internos e IPs caem em unknown.
func isPublicHost(host string) bool {
	idx := strings.LastIndex(host, ".")
	if idx < 0 || idx == len(host)-1 {
		return false
	}

	tld := host[idx+1:]
	for _, r := range tld {
		if r < 'a' || r > 'z' {
			return false
		}
	}

	return true
}

// encodeSorted serializa a query com chaves ordenadas para que a URL
// normalizada seja estável entre execuções.
func encodeSorted(values url.Values) string {
	if len(values) == 0 {
		return ""
	}

	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var builder strings.Builder
	for _, key := range keys {
		for _, value := range values[key] {
			if builder.Len() > 0 {
				builder.WriteByte('&')
			}
			builder.WriteString(url.QueryEscape(key))
			builder.WriteByte('=')
			builder.WriteString(url.QueryEscape(value))
		}
	}

	return builder.String()
}
