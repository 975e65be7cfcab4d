package domain

import (
	"errors"
)

// Erros sentinela da taxonomia do pipeline. Os usecases envolvem essas
// sentinelas com pkg/errors para carregar contexto; a camada de API as mapeia
// para códigos HTTP via pkg/apiErrors.
var (
	// ErrConfiguration indica credenciais ou conexão ausentes. Fatal: nenhum
	// trabalho parcial é tentado.
	ErrConfiguration = errors.New("configuração inválida ou ausente")

	// ErrSourceUnavailable indica que a fonte externa de anúncios está
	// inacessível ou respondeu não-2xx após as tentativas limitadas.
	ErrSourceUnavailable = errors.New("fonte de anúncios indisponível")

	// ErrMalformedSourceData indica payload indecifrável vindo da fonte.
	ErrMalformedSourceData = errors.New("dados da fonte malformados")

	// ErrPersistence indica falha de leitura/escrita no banco. Fatal no modo
	// direcionado; registrada por marca no modo batch.
	ErrPersistence = errors.New("erro de persistência")

	// ErrBrandNotFound indica que a marca referenciada não existe.
	ErrBrandNotFound = errors.New("marca não encontrada")
)
