package domain

// TrendKind classifica a variação de posição de um vendedor em relação ao
// snapshot diário.
type TrendKind string

const (
	// TrendNone indica ausência de indicador (sem vendas na tabela diária).
	TrendNone TrendKind = ""
	// TrendLatestSale é usado apenas no período diário: em vez de seta,
	// a tabela mostra o valor da última venda do vendedor.
	TrendLatestSale TrendKind = "latest_sale"
	TrendNew        TrendKind = "new"
	TrendUp         TrendKind = "up"
	TrendDown       TrendKind = "down"
	TrendUnchanged  TrendKind = "unchanged"
)

// TrendResult é o resultado do cálculo de tendência para um vendedor em um
// período. Subir no ranking significa DIMINUIR o número da posição (1º é o
// melhor), então Up carrega positions = posiçãoSnapshot - posiçãoAtual.
type TrendResult struct {
	Kind      TrendKind `json:"kind"`
	Positions int       `json:"positions,omitempty"`
	Amount    float64   `json:"amount,omitempty"`
}
