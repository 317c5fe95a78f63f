package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

const testCompany = "00000000-0000-0000-0000-000000000002"

func TestParseRates_UTF8(t *testing.T) {
	csv := "kind,code,name,purity,rate_rupees\n" +
		"metal,au22k,Oro 22K,22K,6123.455\n" +
		"GEMSTONE,RUBY,Rubí,,10000\n"
	rows, err := parseRates([]byte(csv))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, rateRow{Kind: "METAL", Code: "AU22K", Name: "Oro 22K", Purity: "22K", RatePaise: 612346}, rows[0])
	assert.Equal(t, "Rubí", rows[1].Name)
	assert.Equal(t, int64(1000000), rows[1].RatePaise)
}

func TestParseRates_Latin1(t *testing.T) {
	csv := "kind,code,name,purity,rate_rupees\nGEMSTONE,RUBY,Rubí birmano,,9500.5\n"
	latin1, err := charmap.ISO8859_1.NewEncoder().String(csv)
	require.NoError(t, err)

	rows, err := parseRates([]byte(latin1))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Rubí birmano", rows[0].Name)
	assert.Equal(t, int64(950050), rows[0].RatePaise)
}

func TestParseRates_UltimoCodigoGana(t *testing.T) {
	csv := "kind,code,name,purity,rate_rupees\n" +
		"METAL,AU22K,Oro,22K,6000\n" +
		"METAL,AG925,Plata,925,80\n" +
		"METAL,AU22K,Oro,22K,6100\n"
	rows, err := parseRates([]byte(csv))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "AG925", rows[0].Code)
	assert.Equal(t, "AU22K", rows[1].Code)
	assert.Equal(t, int64(610000), rows[1].RatePaise)
}

func TestParseRates_Errores(t *testing.T) {
	header := "kind,code,name,purity,rate_rupees\n"
	tests := map[string]string{
		"kind desconocido": header + "WOOD,X,Madera,,1\n",
		"code vacío":       header + "METAL,,Oro,22K,1\n",
		"tarifa inválida":  header + "METAL,AU,Oro,22K,abc\n",
		"tarifa negativa":  header + "METAL,AU,Oro,22K,-1\n",
		"columnas":         header + "METAL,AU,Oro\n",
		"vacío":            "",
	}
	for name, csv := range tests {
		_, err := parseRates([]byte(csv))
		assert.Error(t, err, name)
	}
}

func TestWriteMigration(t *testing.T) {
	rows := []rateRow{{Kind: "METAL", Code: "AU22K", Name: "Oro d'Italia", Purity: "22K", RatePaise: 612346}}
	var b strings.Builder
	require.NoError(t, writeMigration(&b, testCompany, rows))
	sql := b.String()

	assert.Contains(t, sql, "-- +goose Up")
	assert.Contains(t, sql, "-- +goose Down")
	assert.Contains(t, sql, "'Oro d''Italia'")
	assert.Contains(t, sql, "612346)")
	assert.Contains(t, sql, "ON CONFLICT (company_id, code)")
	assert.Contains(t, sql, "code IN ('AU22K')")

	// Regenerar produce el mismo ID.
	var again strings.Builder
	require.NoError(t, writeMigration(&again, testCompany, rows))
	assert.Equal(t, sql, again.String())
}

func TestWriteMigrationFile(t *testing.T) {
	rows := []rateRow{{Kind: "METAL", Code: "AU22K", Name: "Oro 22K", Purity: "22K", RatePaise: 612346}}
	path := filepath.Join(t.TempDir(), "00002_seed_rates.sql")

	require.NoError(t, writeMigrationFile(path, testCompany, rows))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "-- +goose Down")
}

func TestWriteMigrationFile_ErrorNoDejaArchivoParcial(t *testing.T) {
	rows := []rateRow{{Kind: "METAL", Code: "AU22K", Name: "Oro 22K", Purity: "22K", RatePaise: 612346}}
	path := filepath.Join(t.TempDir(), "00002_seed_rates.sql")

	err := writeMigrationFile(path, "no-es-uuid", rows)
	require.Error(t, err)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "el archivo parcial debe borrarse")

	err = writeMigrationFile(filepath.Join(t.TempDir(), "no-existe", "x.sql"), testCompany, rows)
	assert.Error(t, err)
}
