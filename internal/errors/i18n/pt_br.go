package i18n

var ptBRCatalog = &Catalog{
	locale: "pt-BR",
	messages: map[Code]string{
		CodeUnknown:    "Ocorreu um erro inesperado",
		CodeSpinFailed: "Não foi possível completar o giro, tente novamente",

		CodeGameNotFound:                 "Jogo não encontrado",
		CodeSpinNotAllowedNoGameClick:    "Giro não permitido antes de entrar no jogo",
		CodeSpinNotAllowed:               "Giro não permitido agora, colete seu prêmio pendente primeiro",
		CodeBetAlterDeniedFreeSpinActive: "A aposta não pode ser alterada durante giros grátis",
		CodeBetOutOfRange:                "A aposta por linha deve estar entre {{.Min}} e {{.Max}}",
		CodeInsufficientBalance:          "Saldo insuficiente para esta aposta",

		CodeInvalidSecureToken: "Token de segurança inválido",
		CodeInvalidClient:      "Outro cliente já está jogando este jogo",
		CodeNoUserSession:      "Nenhuma sessão de jogo ativa",

		CodeGambleNotAllowed:     "A aposta dupla não está disponível agora",
		CodeGambleAmountExceeded: "O valor {{.Stake}} excede o limite {{.Max}}",
		CodeGambleLimitReached:   "Limite de rodadas de aposta dupla atingido",

		CodeTakeWinNotAllowedNoGameClick: "Coleta de prêmio não permitida antes de entrar no jogo",
		CodeNoWinsToCollect:              "Não há prêmios para coletar",
		CodeWinBeingPicked:               "Seu prêmio já está sendo coletado",
		CodeWalletCreditFailed:           "Não foi possível creditar o prêmio, tente novamente",

		CodeSessionConflict: "A sessão do jogo mudou, tente novamente",
	},
}
