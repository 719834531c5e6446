// Package ui - Catalog views
package ui

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"mobile-tariffs/core/catalog"
	"mobile-tariffs/core/selection"
)

// About texts
const (
	AboutTitle = "О нас"
	AboutText  = "Здесь будет информация о нас"
)

// Operators prints operator names one per line
func (w *Writer) Operators(ops []catalog.Operator) {
	for _, op := range ops {
		w.Line(op.Name)
	}
}

// OperatorDetails prints the descriptive block of one operator
func (w *Writer) OperatorDetails(op catalog.Operator) {
	w.SubHeader("Выбранный оператор: " + op.Name)
	w.Line("Скорость соединения: " + op.Speed)
	w.Line("Качество связи: " + op.Quality)
	w.Line("Тарифы: " + JoinTariffs(op.Tariffs()))
}

// JoinTariffs renders tariffs in their display form, comma separated
func JoinTariffs(tariffs []catalog.Tariff) string {
	return strings.Join(lo.Map(tariffs, func(t catalog.Tariff, _ int) string {
		return t.String()
	}), ", ")
}

// Tariffs prints every operator followed by its tariff lines
func (w *Writer) Tariffs(ops []catalog.Operator) {
	for _, op := range ops {
		w.SubHeader(op.Name + ":")
		for _, t := range op.Tariffs() {
			w.Println("  - %s (%d RUB)", t.Name, t.Price)
		}
	}
}

// Selected prints the confirmation for a successful selection
func (w *Writer) Selected(res selection.Result) {
	w.Success("%s", res.Message())
}

// InvalidTariff prints the rejection and what the operator does offer
func (w *Writer) InvalidTariff(err *selection.InvalidTariffError, op catalog.Operator) {
	w.Error("%s", err.Error())
	w.Warning("Доступные тарифы %s: %s", op.Name, JoinTariffs(op.Tariffs()))
}

// Stats prints the price statistics table
func (w *Writer) Stats(stats catalog.CatalogStats) {
	table := w.NewTable("Оператор", "Тарифы", "Мин.", "Макс.", "Среднее")
	for _, s := range stats.ByOperator {
		table.AddRow(
			s.Name,
			fmt.Sprint(s.Tariffs),
			fmt.Sprintf("%d RUB", s.Cheapest.Price),
			fmt.Sprintf("%d RUB", s.Priciest.Price),
			s.Mean.StringFixed(2)+" RUB",
		)
	}
	table.Render()

	if stats.Tariffs > 0 {
		w.Println("Самый дешёвый тариф: %s (%s)", stats.Cheapest, stats.CheapestOperator)
	}
}

// About prints the about section
func (w *Writer) About() {
	w.Header(AboutTitle)
	w.Line(AboutText)
}
