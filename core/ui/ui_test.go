package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mobile-tariffs/core/catalog"
	"mobile-tariffs/core/selection"
)

func newTestWriter() (*Writer, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewWriter(&buf, true), &buf
}

func TestOperators(t *testing.T) {
	w, buf := newTestWriter()
	w.Operators(catalog.Default().List())
	assert.Equal(t, "Megafon\nMTS\nTele2\nYota\n", buf.String())
}

func TestOperatorDetails(t *testing.T) {
	w, buf := newTestWriter()
	mts, _ := catalog.Default().Get("mts")

	w.OperatorDetails(mts)
	assert.Equal(t, strings.Join([]string{
		"Выбранный оператор: MTS",
		"Скорость соединения: высокая",
		"Качество связи: хорошее",
		"Тарифы: Тариф 1 - 299 RUB, Тариф 2 - 499 RUB, Тариф 3 - 899 RUB",
		"",
	}, "\n"), buf.String())
}

func TestTariffs(t *testing.T) {
	w, buf := newTestWriter()
	tele2, _ := catalog.Default().Get("tele2")

	w.Tariffs([]catalog.Operator{tele2})
	assert.Equal(t, "Tele2:\n  - Тариф 1 (249 RUB)\n  - Тариф 2 (419 RUB)\n  - Тариф 3 (719 RUB)\n", buf.String())
}

func TestSelectionMessages(t *testing.T) {
	mts, _ := catalog.Default().Get("mts")

	w, buf := newTestWriter()
	res, err := selection.Select(mts, 899)
	require.NoError(t, err)
	w.Selected(res)
	assert.Equal(t, "✓ Тариф за 899 RUB оформлен. Спасибо, что пользуетесь нами!\n", buf.String())

	w, buf = newTestWriter()
	_, err = selection.Select(mts, 1)
	var invalid *selection.InvalidTariffError
	require.ErrorAs(t, err, &invalid)
	w.InvalidTariff(invalid, mts)
	assert.Equal(t, "✗ Invalid tariff: 1\n⚠ Доступные тарифы MTS: Тариф 1 - 299 RUB, Тариф 2 - 499 RUB, Тариф 3 - 899 RUB\n", buf.String())
}

func TestTableAlignsCyrillic(t *testing.T) {
	w, buf := newTestWriter()
	table := w.NewTable("Имя", "Цена")
	table.AddRow("Тариф 1", "200")
	table.AddRow("X", "1000", "dropped")
	table.Render()

	assert.Equal(t, strings.Join([]string{
		"Имя     │ Цена",
		"────────┼─────",
		"Тариф 1 │ 200",
		"X       │ 1000",
		"",
	}, "\n"), buf.String())
}

func TestStats(t *testing.T) {
	w, buf := newTestWriter()
	w.Stats(catalog.Default().Stats())

	out := buf.String()
	assert.Contains(t, out, "MTS      │ 3      │ 299 RUB │ 899 RUB │ 565.67 RUB")
	assert.Contains(t, out, "Самый дешёвый тариф: Тариф 1 - 200 RUB (Megafon)")
}

func TestColorsCanBeDisabled(t *testing.T) {
	var colored, plain bytes.Buffer
	NewWriter(&colored, false).Success("ok")
	NewWriter(&plain, true).Success("ok")

	assert.Contains(t, colored.String(), Green)
	assert.Equal(t, "✓ ok\n", plain.String())
}

func TestAbout(t *testing.T) {
	w, buf := newTestWriter()
	w.About()
	assert.Equal(t, "━━━ О нас ━━━\nЗдесь будет информация о нас\n", buf.String())
}
