// seed puebla la base de datos con datos de demostración: un usuario, clientes
// y facturas de ejemplo para el panel.
//
// Uso: go run ./cmd/seed
// Lee la misma configuración que la API (DATABASE_URL o DB_HOST, etc.).
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/dashboard-api/internal/domain/entity"
	"github.com/jhoicas/dashboard-api/internal/infrastructure/postgres"
	"github.com/jhoicas/dashboard-api/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintln(os.Stderr, "conexión a PostgreSQL:", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Usuario demo
	hash, err := bcrypt.GenerateFromPassword([]byte("123456789"), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintln(os.Stderr, "hash de password:", err)
		os.Exit(1)
	}
	now := time.Now()
	_, err = pool.Exec(ctx, `
		INSERT INTO users (id, name, email, password_hash, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, 'active', $5, $5)
		ON CONFLICT (email) DO NOTHING`,
		uuid.New().String(), "Usuario Demo", "user@nextmail.com", string(hash), now,
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, "seed usuario:", err)
		os.Exit(1)
	}

	customers := []struct {
		name  string
		email string
	}{
		{"Evil Rabbit", "evil@rabbit.com"},
		{"Delba de Oliveira", "delba@oliveira.com"},
		{"Lee Robinson", "lee@robinson.com"},
		{"Michael Novotny", "michael@novotny.com"},
		{"Amy Burns", "amy@burns.com"},
		{"Balazs Orban", "balazs@orban.com"},
	}

	customerIDs := make([]string, 0, len(customers))
	for _, c := range customers {
		id := uuid.New().String()
		_, err := pool.Exec(ctx, `
			INSERT INTO customers (id, name, email, image_url)
			VALUES ($1, $2, $3, '')`,
			id, c.name, c.email,
		)
		if err != nil {
			fmt.Fprintln(os.Stderr, "seed cliente:", err)
			os.Exit(1)
		}
		customerIDs = append(customerIDs, id)
	}

	// Facturas de ejemplo: montos en centavos, fechas pasadas, estados mixtos.
	seedInvoices := []struct {
		customer int
		amount   int64
		status   string
		daysAgo  int
	}{
		{0, 15795, entity.InvoiceStatusPending, 3},
		{1, 20348, entity.InvoiceStatusPending, 40},
		{2, 3040, entity.InvoiceStatusPaid, 9},
		{3, 44800, entity.InvoiceStatusPaid, 120},
		{4, 34577, entity.InvoiceStatusPending, 200},
		{5, 54246, entity.InvoiceStatusPending, 310},
		{0, 666, entity.InvoiceStatusPending, 64},
		{2, 32545, entity.InvoiceStatusPaid, 365},
		{4, 1250, entity.InvoiceStatusPaid, 27},
		{5, 8546, entity.InvoiceStatusPaid, 75},
	}
	for _, inv := range seedInvoices {
		date := now.AddDate(0, 0, -inv.daysAgo)
		_, err := pool.Exec(ctx, `
			INSERT INTO invoices (id, customer_id, amount, status, date)
			VALUES ($1, $2, $3, $4, $5)`,
			uuid.New().String(), customerIDs[inv.customer], inv.amount, inv.status, date,
		)
		if err != nil {
			fmt.Fprintln(os.Stderr, "seed factura:", err)
			os.Exit(1)
		}
	}

	fmt.Printf("seed completado: 1 usuario, %d clientes, %d facturas\n", len(customers), len(seedInvoices))
}
