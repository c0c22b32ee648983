package entity

import "slices"

// BrazilianStates are the accepted values for a store's state field.
var BrazilianStates = []string{
	"Acre", "Alagoas", "Amapá", "Amazonas", "Bahia", "Ceará", "Distrito Federal", "Espírito Santo",
	"Goiás", "Maranhão", "Mato Grosso", "Mato Grosso do Sul", "Minas Gerais", "Pará", "Paraíba",
	"Paraná", "Pernambuco", "Piauí", "Rio de Janeiro", "Rio Grande do Norte", "Rio Grande do Sul",
	"Rondônia", "Roraima", "Santa Catarina", "São Paulo", "Sergipe", "Tocantins",
}

// IsBrazilianState reports whether name is one of BrazilianStates.
func IsBrazilianState(name string) bool {
	return slices.Contains(BrazilianStates, name)
}
