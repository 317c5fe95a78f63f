// seed_rates genera una migración goose con las tarifas de compra del catálogo de metales y piedras
// a partir de un CSV exportado por la joyería (kind,code,name,purity,rate_rupees).
//
// Uso: go run ./cmd/seed_rates -company <uuid> [-in tarifas.csv] [-out ruta.sql]
// El CSV puede venir en UTF-8 o ISO-8859-1 (exportaciones de Excel); se detecta solo.
// Por defecto escribe internal/infrastructure/postgres/migrations/00002_seed_rates.sql.
package main

import (
	"bytes"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/joyeria-api/internal/domain/entity"
	"github.com/jhoicas/joyeria-api/internal/domain/pricing"
)

type rateRow struct {
	Kind      string
	Code      string
	Name      string
	Purity    string
	RatePaise int64
}

func main() {
	companyID := flag.String("company", "", "UUID de la empresa dueña del catálogo")
	inPath := flag.String("in", "tarifas.csv", "CSV de tarifas")
	outPath := flag.String("out", "", "archivo SQL de salida")
	flag.Parse()

	if _, err := uuid.Parse(*companyID); err != nil {
		fmt.Fprintf(os.Stderr, "-company debe ser un UUID válido: %v\n", err)
		os.Exit(2)
	}
	data, err := os.ReadFile(*inPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}
	rows, err := parseRates(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Procesar CSV: %v\n", err)
		os.Exit(1)
	}

	path := *outPath
	if path == "" {
		path = filepath.Join(findModuleRoot(), "internal", "infrastructure", "postgres", "migrations", "00002_seed_rates.sql")
	}
	if err := writeMigrationFile(path, *companyID, rows); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generado %s: %d tarifas\n", path, len(rows))
}

// parseRates lee el CSV con cabecera. Si el contenido no es UTF-8 válido se decodifica como ISO-8859-1.
func parseRates(data []byte) ([]rateRow, error) {
	var src io.Reader = bytes.NewReader(data)
	if !utf8.Valid(data) {
		src = transform.NewReader(src, charmap.ISO8859_1.NewDecoder())
	}
	r := csv.NewReader(src)
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = 5

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, errors.New("CSV vacío")
	}

	var rows []rateRow
	for i, rec := range records[1:] {
		line := i + 2
		kind := strings.ToUpper(strings.TrimSpace(rec[0]))
		if kind != entity.MaterialKindMetal && kind != entity.MaterialKindGemstone {
			return nil, fmt.Errorf("línea %d: kind %q inválido", line, rec[0])
		}
		code := strings.ToUpper(strings.TrimSpace(rec[1]))
		if code == "" {
			return nil, fmt.Errorf("línea %d: code vacío", line)
		}
		rate, err := decimal.NewFromString(strings.TrimSpace(rec[4]))
		if err != nil {
			return nil, fmt.Errorf("línea %d: tarifa %q: %w", line, rec[4], err)
		}
		paise, err := pricing.RupeesToPaise(rate)
		if err != nil {
			return nil, fmt.Errorf("línea %d: %w", line, err)
		}
		rows = append(rows, rateRow{
			Kind:      kind,
			Code:      code,
			Name:      strings.TrimSpace(rec[2]),
			Purity:    strings.TrimSpace(rec[3]),
			RatePaise: paise,
		})
	}

	// La última fila de un código repetido gana.
	rows = lo.Reverse(lo.UniqBy(lo.Reverse(rows), func(r rateRow) string { return r.Code }))
	return rows, nil
}

// writeMigrationFile crea path con la migración. Si algo falla el archivo se cierra y se borra.
func writeMigrationFile(path, companyID string, rows []rateRow) (err error) {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("crear archivo: %w", err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("cerrar archivo: %w", cerr)
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()
	return writeMigration(out, companyID, rows)
}

// writeMigration escribe un upsert por (company_id, code). El ID es determinista para que
// regenerar el archivo no cambie filas existentes.
func writeMigration(w io.Writer, companyID string, rows []rateRow) error {
	company, err := uuid.Parse(companyID)
	if err != nil {
		return fmt.Errorf("empresa %q: %w", companyID, err)
	}
	var b strings.Builder
	b.WriteString("-- Tarifas de compra del catálogo (generado por cmd/seed_rates)\n\n")
	b.WriteString("-- +goose Up\n")
	for _, r := range rows {
		id := uuid.NewSHA1(company, []byte(r.Code))
		fmt.Fprintf(&b, "INSERT INTO materials (id, company_id, kind, code, name, purity, rate_paise)\n")
		fmt.Fprintf(&b, "VALUES ('%s', '%s', '%s', '%s', '%s', '%s', %d)\n",
			id, company, r.Kind, escapeSQL(r.Code), escapeSQL(r.Name), escapeSQL(r.Purity), r.RatePaise)
		b.WriteString("ON CONFLICT (company_id, code) DO UPDATE SET name = EXCLUDED.name, purity = EXCLUDED.purity,\n")
		b.WriteString("    rate_paise = EXCLUDED.rate_paise, updated_at = now();\n")
	}
	b.WriteString("\n-- +goose Down\n")
	if len(rows) > 0 {
		codes := lo.Map(rows, func(r rateRow, _ int) string { return "'" + escapeSQL(r.Code) + "'" })
		fmt.Fprintf(&b, "DELETE FROM materials WHERE company_id = '%s' AND code IN (%s);\n", company, strings.Join(codes, ", "))
	}
	_, err = io.WriteString(w, b.String())
	return err
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
