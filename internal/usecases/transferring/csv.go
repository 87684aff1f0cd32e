package transferring

import (
	"bytes"
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Cabeçalho fixo da exportação: uma linha por venda; vendedor sem vendas
// gera uma única linha com os campos de venda vazios.
var exportHeader = []string{
	"salesperson_id",
	"name",
	"registered_at",
	"sale_id",
	"amount",
	"occurred_at",
	"year",
	"month",
	"day",
	"hour",
}

// Aliases aceitos por campo lógico na importação, em ordem de preferência.
// A lista é resolvida uma única vez no início do parse para um mapa
// coluna -> índice; o restante do arquivo usa só os índices.
var importAliases = map[string][]string{
	"name":   {"name", "salesperson", "nombre_vendedor", "nombre", "vendedor", "nome"},
	"amount": {"amount", "monto_venta", "monto", "valor", "importe"},
	"date":   {"occurred_at", "fecha_venta", "fecha", "date", "data"},
	"year":   {"year", "ano", "anio", "año"},
	"month":  {"month", "mes"},
	"day":    {"day", "dia", "día"},
	"hour":   {"hour", "hora"},
}

// ExportCSV gera o arquivo CSV do ledger completo.
func (s *Service) ExportCSV() ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(exportHeader); err != nil {
		return nil, err
	}

	for _, sp := range s.ledger.ListSalespeople() {
		if len(sp.Sales) == 0 {
			row := []string{
				sp.ID,
				sp.Name,
				sp.RegisteredAt.Format(time.RFC3339),
				"", "0", "", "", "", "", "",
			}
			if err := writer.Write(row); err != nil {
				return nil, err
			}
			continue
		}

		for _, sale := range sp.Sales {
			row := []string{
				sp.ID,
				sp.Name,
				sp.RegisteredAt.Format(time.RFC3339),
				sale.ID,
				strconv.FormatFloat(sale.Amount, 'f', -1, 64),
				sale.OccurredAt.Format(time.RFC3339),
				strconv.Itoa(sale.OccurredAt.Year()),
				strconv.Itoa(int(sale.OccurredAt.Month())),
				strconv.Itoa(sale.OccurredAt.Day()),
				strconv.Itoa(sale.OccurredAt.Hour()),
			}
			if err := writer.Write(row); err != nil {
				return nil, err
			}
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// ImportCSV lê um CSV tolerante a variações de cabeçalho, criando vendedores
// sob demanda pelo nome e montando OccurredAt a partir da data explícita ou
// das colunas ano/mês/dia/hora (hora padrão: meio-dia). Um arquivo sem
// nenhuma linha aproveitável é rejeitado.
func (s *Service) ImportCSV(data []byte, now time.Time) (*ImportSummary, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, ErrMalformedImportData
	}

	columns := resolveColumns(header)
	if _, ok := columns["name"]; !ok {
		return nil, ErrMissingNameColumn
	}

	summary := &ImportSummary{}

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			summary.RowsSkipped++
			continue
		}

		if imported := s.importRow(row, columns, now, summary); !imported {
			summary.RowsSkipped++
		}
	}

	if summary.SalesImported == 0 && summary.SalespeopleCreated == 0 {
		return nil, ErrNoUsableRows
	}

	s.ledger.Persist()

	logrus.WithFields(logrus.Fields{
		"salespeople_created": summary.SalespeopleCreated,
		"sales_imported":      summary.SalesImported,
		"rows_skipped":        summary.RowsSkipped,
	}).Info("Importação de CSV concluída")

	return summary, nil
}

// importRow processa uma linha; retorna false quando nada foi aproveitado.
func (s *Service) importRow(row []string, columns map[string]int, now time.Time, summary *ImportSummary) bool {
	name := strings.TrimSpace(cell(row, columns, "name"))
	if name == "" {
		return false
	}

	salesperson := s.ledger.FindByName(name)
	if salesperson == nil {
		created, err := s.ledger.RegisterSalesperson(name, now)
		if err != nil {
			return false
		}
		salesperson = created
		summary.SalespeopleCreated++
	}

	amountText := strings.TrimSpace(cell(row, columns, "amount"))
	if amountText == "" {
		// Linha só de cadastro do vendedor (exportação de vendedor sem vendas).
		return true
	}

	amount, err := ParseFlexibleAmount(amountText)
	if err != nil || amount <= 0 {
		return false
	}

	occurredAt := s.resolveOccurredAt(row, columns, now)

	if _, err := s.ledger.ImportSale(salesperson.ID, amount, occurredAt); err != nil {
		return false
	}

	summary.SalesImported++
	return true
}

// resolveOccurredAt monta a data da venda: primeiro tenta a coluna de data
// explícita, depois as partes ano/mês/dia/hora. Sem nada utilizável, usa now.
func (s *Service) resolveOccurredAt(row []string, columns map[string]int, now time.Time) time.Time {
	if raw := strings.TrimSpace(cell(row, columns, "date")); raw != "" {
		for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
			if parsed, err := time.ParseInLocation(layout, raw, now.Location()); err == nil {
				return parsed
			}
		}
	}

	year := parseIntCell(row, columns, "year", 0)
	month := parseIntCell(row, columns, "month", 0)
	day := parseIntCell(row, columns, "day", 0)
	hour := parseIntCell(row, columns, "hour", 12)

	if year > 0 && month >= 1 && month <= 12 && day >= 1 && day <= 31 {
		return time.Date(year, time.Month(month), day, hour, 0, 0, 0, now.Location())
	}

	return now
}

// resolveColumns casa os aliases conhecidos com o cabeçalho recebido,
// produzindo o mapa campo lógico -> índice de coluna.
func resolveColumns(header []string) map[string]int {
	normalized := make([]string, len(header))
	for i, h := range header {
		normalized[i] = normalizeHeader(h)
	}

	columns := make(map[string]int)
	for field, aliases := range importAliases {
		for _, alias := range aliases {
			for i, h := range normalized {
				if h == normalizeHeader(alias) {
					columns[field] = i
					break
				}
			}
			if _, ok := columns[field]; ok {
				break
			}
		}
	}

	return columns
}

// normalizeHeader rebaixa o cabeçalho para comparação: minúsculas, sem
// espaços ao redor e com separadores comuns reduzidos a underscore.
func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	h = strings.ReplaceAll(h, " ", "_")
	h = strings.ReplaceAll(h, "-", "_")
	h = strings.Trim(h, "\ufeff")
	return h
}

// ParseFlexibleAmount aceita valores com separador de milhar e vírgula
// decimal: "1.234,56" vira 1234.56, "1,5" vira 1.5, "1234.56" fica como está.
func ParseFlexibleAmount(raw string) (float64, error) {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= '0' && r <= '9', r == '.', r == ',', r == '-':
			return r
		default:
			return -1
		}
	}, raw)

	lastDot := strings.LastIndex(cleaned, ".")
	lastComma := strings.LastIndex(cleaned, ",")

	switch {
	case lastDot >= 0 && lastComma >= 0:
		// O separador que aparece por último é o decimal; o outro é milhar.
		if lastComma > lastDot {
			cleaned = strings.ReplaceAll(cleaned, ".", "")
			cleaned = strings.Replace(cleaned, ",", ".", 1)
		} else {
			cleaned = strings.ReplaceAll(cleaned, ",", "")
		}
	case lastComma >= 0:
		// Só vírgulas: a última é decimal, as demais são milhar.
		cleaned = strings.ReplaceAll(cleaned[:lastComma], ",", "") + "." + cleaned[lastComma+1:]
	}

	return strconv.ParseFloat(cleaned, 64)
}

func cell(row []string, columns map[string]int, field string) string {
	idx, ok := columns[field]
	if !ok || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func parseIntCell(row []string, columns map[string]int, field string, fallback int) int {
	raw := strings.TrimSpace(cell(row, columns, field))
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}

	return value
}
