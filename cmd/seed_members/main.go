// seed_members genera un script SQL para migrar el padrón de socios de la
// tienda a partir del CSV exportado por el sistema anterior (codificado en
// ISO-8859-1, con tildes y eñes en los nombres de usuario).
//
// Formato del CSV: username;membership;points
//
// Uso: go run ./cmd/seed_members [ruta/socios.csv]
// Por defecto busca socios.csv en el directorio actual.
// Escribe: internal/infrastructure/postgres/migrations/002_seed_members.sql
//
// Los socios importados reciben un password temporal (hasheado con bcrypt)
// que deben cambiar en su primer inicio de sesión.
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

// tempPassword password inicial de los socios migrados.
const tempPassword = "cambiame123"

type member struct {
	username   string
	membership string
	points     int64
}

func main() {
	csvPath := "socios.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	// El export del sistema anterior viene en ISO-8859-1, no UTF-8.
	reader := csv.NewReader(transform.NewReader(f, charmap.ISO8859_1.NewDecoder()))
	reader.Comma = ';'
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}

	// Deduplicar por username; el último registro gana (el export trae
	// históricos repetidos).
	byUsername := make(map[string]member)
	for i, rec := range records {
		if i == 0 && strings.EqualFold(rec[0], "username") {
			continue // cabecera
		}
		if len(rec) < 3 {
			continue
		}
		username := strings.TrimSpace(rec[0])
		if username == "" {
			continue
		}
		membership := strings.ToLower(strings.TrimSpace(rec[1]))
		if !entity.ValidMembership(membership) {
			membership = entity.MembershipBronze
		}
		points, _ := strconv.ParseInt(strings.TrimSpace(rec[2]), 10, 64)
		if points < 0 {
			points = 0
		}
		byUsername[username] = member{username: username, membership: membership, points: points}
	}

	// Orden estable de salida
	var usernames []string
	for u := range byUsername {
		usernames = append(usernames, u)
	}
	sort.Strings(usernames)

	hash, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Hashear password temporal: %v\n", err)
		os.Exit(1)
	}

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_seed_members.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Socios migrados del sistema anterior\n")
	out.WriteString("-- Generado desde socios.csv (export ISO-8859-1)\n\n")

	for _, u := range usernames {
		m := byUsername[u]
		fmt.Fprintf(out, "INSERT INTO users (id, username, password_hash, membership, points, status)\n")
		fmt.Fprintf(out, "VALUES ('%s', '%s', '%s', '%s', %d, '%s')\n",
			uuid.New().String(), escapeSQL(m.username), string(hash),
			m.membership, m.points, entity.UserStatusActive)
		out.WriteString("ON CONFLICT (username) DO UPDATE SET membership = EXCLUDED.membership, points = EXCLUDED.points;\n")
	}

	fmt.Printf("Generado %s: %d socios\n", outPath, len(usernames))
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
