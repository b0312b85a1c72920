package i18n

var ptBRCatalog = &Catalog{
	locale: "pt-BR",
	messages: map[Code]string{
		CodeInvalidArgument:  "Requisição inválida: {{.Reason}}",
		CodeUnauthenticated:  "É necessário um token de identidade válido",
		CodePermissionDenied: "Sua identidade não tem permissão para esta operação",

		CodePoolNotInitialized:     "O pool de aleatoriedade ainda não foi inicializado",
		CodeAlreadyInitialized:     "O pool de aleatoriedade já foi inicializado",
		CodeUnauthorized:           "Somente o administrador do pool pode alterá-lo",
		CodeInvalidSourceAuthority: "A fonte {{.Source}} não é controlada por este pool",
		CodeDuplicateSource:        "A fonte {{.Source}} já está no pool",

		CodeEmptyPool:               "O pool de aleatoriedade ainda não tem fontes",
		CodeSourceAuthorityMismatch: "A fonte {{.Source}} não é mais controlada por este pool",
		CodeDuplicatePendingRequest: "Você já tem uma rolagem em andamento",

		CodeSourceMismatch: "A fonte {{.Source}} não está vinculada a esta rolagem",
		CodeAlreadySettled: "Esta rolagem já foi liquidada",
		CodeNotYetSettled:  "O dado ainda está rolando",
		CodeRecordNotFound: "Nenhuma rolagem encontrada para {{.Owner}}",

		CodeSourceUnknown:     "A rede de oráculos não conhece a fonte {{.Source}}",
		CodeOracleUnavailable: "A rede de oráculos está indisponível, tente novamente mais tarde",
	},
}
