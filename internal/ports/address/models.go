package address

// Address representa un endereço normalizado devuelto por el proveedor de CEP.
// Los nombres de campo siguen el vocabulario de ViaCEP (logradouro, bairro, uf).
type Address struct {
	CEP        string
	Street     string // logradouro
	Complement string
	District   string // bairro
	City       string // localidade
	UF         string
	IBGE       string
	DDD        string
}
