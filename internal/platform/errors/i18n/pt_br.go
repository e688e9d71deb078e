package i18n

var ptBRCatalog = &Catalog{
	locale: "pt-BR",
	messages: map[Code]string{
		CodeDiceExpressionInvalid: "Não foi possível ler a expressão de dados {{.Expression}}",
		CodeDiceInvalidSpec:       "O campo {{.Field}} dos dados deve ser positivo",
		CodeDiceLimitExceeded:     "O campo {{.Field}} com valor {{.Value}} excede o limite de {{.Limit}}",
		CodeSeedUnavailable:       "Não foi possível gerar uma semente aleatória, tente novamente",
		CodeNotFound:              "{{.Resource}} não encontrada",
		CodeHistoryDisabled:       "O histórico de rolagens não está habilitado neste servidor",
		CodePageTokenInvalid:      "O token de página é inválido ou não corresponde à requisição",
		CodeFilterInvalid:         "Filtro inválido: {{.Reason}}",
	},
}
