package postgres

import (
	"testing"

	"github.com/DRSN-tech/soares-modas/internal/cfg"
	"github.com/stretchr/testify/assert"
)

func TestBuildDSN(t *testing.T) {
	dsn := BuildDSN(&cfg.PGDBCfg{
		Host:     "db",
		Port:     "5432",
		User:     "soares",
		Password: "secret",
		DBName:   "storefront",
		SSLMode:  "disable",
	})

	assert.Equal(t, "host=db port=5432 user=soares password=secret dbname=storefront sslmode=disable", dsn)
}
