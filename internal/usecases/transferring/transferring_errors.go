package transferring

import "errors"

// Erros específicos para importação e exportação de dados
var (
	ErrMalformedImportData = errors.New("malformed import data")
	ErrNoUsableRows        = errors.New("csv has no usable rows")
	ErrMissingNameColumn   = errors.New("csv has no recognizable name column")
)
