// Package postgres contiene los adaptadores de persistencia sobre PostgreSQL
// (pgx). Las transiciones de estado se aplican como actualizaciones
// condicionales; la unicidad del número de expediente la garantiza la DB.
package postgres

import (
	"context"
	"fmt"
	"time"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dicri-mp/expedientes-api/pkg/config"
)

// NewPool crea un pool de conexiones PostgreSQL usando la configuración de la
// app. El ping inicial falla rápido si la DB no está disponible; el reintento
// pertenece al orquestador del despliegue, no a este proceso.
func NewPool(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}

	poolConfig.MaxConns = 25
	poolConfig.MinConns = 2
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute

	// Registrar codec para NUMERIC -> shopspring/decimal (tamaño y peso de
	// indicios) en todas las conexiones del pool.
	poolConfig.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("crear pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping DB: %w", err)
	}
	return pool, nil
}
