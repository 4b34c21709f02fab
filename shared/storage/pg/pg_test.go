package pg

import (
	"fmt"
	"testing"

	"github.com/goodways/goodways/shared/config"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestEscapeLike(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"aurora", "aurora"},
		{"100%", `100\%`},
		{"snake_case", `snake\_case`},
		{`back\slash`, `back\\slash`},
		{`%_\`, `\%\_\\`},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.expected, EscapeLike(tt.in))
		})
	}

	assert.Equal(t, `%50\% off%`, ContainsPattern("50% off"))
}

func TestIsForeignKeyViolation(t *testing.T) {
	assert.True(t, IsForeignKeyViolation(fmt.Errorf("insert: %w", &pq.Error{Code: "23503"})))
	assert.False(t, IsForeignKeyViolation(&pq.Error{Code: "23505"}))
	assert.False(t, IsForeignKeyViolation(fmt.Errorf("plain")))
}

func TestDSN(t *testing.T) {
	dsn := DSN(config.Pg{Host: "db", Port: 5432, User: "u", Password: "p", Dbname: "goodways"})
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=goodways sslmode=disable", dsn)
}
