package entity

type Cinema struct {
	Base
	Name string `db:"name"` // unique
	City string `db:"city"`
}
