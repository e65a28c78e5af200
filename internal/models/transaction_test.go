package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTransactionCanEdit(t *testing.T) {
	createdAt := time.Date(2024, time.March, 15, 8, 0, 0, 0, time.UTC)
	tx := &Transaction{CreatedAt: createdAt}

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"immediately after creation", createdAt, true},
		{"one second in", createdAt.Add(time.Second), true},
		{"just under the window", createdAt.Add(EditWindow - time.Millisecond), true},
		{"exactly at the window", createdAt.Add(EditWindow), false},
		{"well past the window", createdAt.Add(24 * time.Hour), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tx.CanEdit(tt.now))
		})
	}
}

func TestValidTransactionType(t *testing.T) {
	assert.True(t, ValidTransactionType("income"))
	assert.True(t, ValidTransactionType("expense"))
	assert.False(t, ValidTransactionType("transfer"))
	assert.False(t, ValidTransactionType(""))
	assert.False(t, ValidTransactionType("Income"))
}

func TestValidDivision(t *testing.T) {
	assert.True(t, ValidDivision("office"))
	assert.True(t, ValidDivision("personal"))
	assert.False(t, ValidDivision("home"))
	assert.False(t, ValidDivision(""))
}

func TestDefaultCategories(t *testing.T) {
	assert.Len(t, DefaultCategories, 12)

	seen := make(map[string]bool)
	var income, expense int
	for _, seed := range DefaultCategories {
		assert.False(t, seen[seed.Name], "duplicate default category %q", seed.Name)
		seen[seed.Name] = true
		assert.NotEmpty(t, seed.Icon)
		assert.Regexp(t, `^#[0-9a-f]{6}$`, seed.Color)
		switch seed.Type {
		case CategoryTypeIncome:
			income++
		case CategoryTypeExpense:
			expense++
		default:
			t.Fatalf("default category %q has type %q", seed.Name, seed.Type)
		}
	}
	assert.Equal(t, 3, income)
	assert.Equal(t, 9, expense)
}
