// Package storage implementa o armazenamento local de documentos da aplicação.
// Cada chave vira um arquivo JSON dentro do diretório de dados, o equivalente
// do localStorage do painel original: instância única, sem servidor de banco.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// LocalStore é um armazém chave -> documento JSON sobre o sistema de arquivos.
// A escrita é sempre do documento inteiro em arquivo temporário seguido de
// rename, para que uma queda no meio da gravação nunca deixe um documento
// parseável porém inconsistente.
type LocalStore struct {
	dir string
}

// NewLocalStore prepara o diretório de dados e valida acesso de escrita.
func NewLocalStore(dataDir string) (*LocalStore, error) {
	if dataDir == "" {
		return nil, errors.New("diretório de dados não configurado")
	}

	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, errors.Wrap(err, "erro ao criar diretório de dados")
	}

	store := &LocalStore{dir: dataDir}

	if err := store.Ping(); err != nil {
		return nil, err
	}

	return store, nil
}

// Ping verifica se o diretório de dados aceita escrita.
func (s *LocalStore) Ping() error {
	probe := filepath.Join(s.dir, ".probe")
	if err := os.WriteFile(probe, []byte("ok"), 0o644); err != nil {
		return errors.Wrap(err, "diretório de dados sem acesso de escrita")
	}
	return os.Remove(probe)
}

// Get lê o documento da chave e decodifica em out. Retorna found=false sem
// erro quando a chave nunca foi gravada.
func (s *LocalStore) Get(key string, out any) (found bool, err error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, errors.Wrapf(err, "erro ao ler documento %q", key)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return false, errors.Wrapf(err, "documento %q corrompido", key)
	}

	return true, nil
}

// Put serializa in e grava o documento inteiro de forma atômica
// (arquivo temporário + rename).
func (s *LocalStore) Put(key string, in any) error {
	data, err := json.Marshal(in)
	if err != nil {
		return errors.Wrapf(err, "erro ao serializar documento %q", key)
	}

	target := s.path(key)
	tmp := target + ".tmp"

	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return errors.Wrapf(err, "erro ao gravar documento %q", key)
	}

	if err := os.Rename(tmp, target); err != nil {
		return errors.Wrapf(err, "erro ao efetivar documento %q", key)
	}

	return nil
}

// Delete remove o documento da chave, se existir.
func (s *LocalStore) Delete(key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "erro ao remover documento %q", key)
	}
	return nil
}

func (s *LocalStore) path(key string) string {
	return filepath.Join(s.dir, fmt.Sprintf("%s.json", key))
}
