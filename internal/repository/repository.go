package repository

import (
	"errors"
	"time"

	"money-manager/internal/models"

	"github.com/Masterminds/squirrel"
)

// ErrNotFound is returned when a record does not exist or belongs to a
// different user. The two cases are deliberately indistinguishable so a
// non-owner learns nothing about the record's existence.
var ErrNotFound = errors.New("record not found")

// TransactionFilter narrows List and Count queries. Zero-valued fields are
// not applied.
type TransactionFilter struct {
	Type      string
	Category  string
	Division  string
	Account   string
	StartDate *time.Time
	EndDate   *time.Time
}

type TypeTotal struct {
	Type  models.TransactionType
	Total float64
	Count int64
}

type CategoryTotal struct {
	Category string
	Type     models.TransactionType
	Total    float64
	Count    int64
}

type DivisionTotal struct {
	Division models.Division
	Type     models.TransactionType
	Total    float64
	Count    int64
}

type TrendPoint struct {
	Bucket string
	Type   models.TransactionType
	Total  float64
	Count  int64
}

type AccountTotal struct {
	Account string
	Type    models.TransactionType
	Total   float64
	Count   int64
}

type TypeStat struct {
	Type    models.TransactionType
	Total   float64
	Count   int64
	Average float64
	Max     float64
	Min     float64
}

func dateRangeConds(query squirrel.SelectBuilder, start, end *time.Time) squirrel.SelectBuilder {
	if start != nil {
		query = query.Where(squirrel.GtOrEq{"date": *start})
	}
	if end != nil {
		query = query.Where(squirrel.LtOrEq{"date": *end})
	}
	return query
}
