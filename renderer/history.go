// Package renderer builds markdown reports from recorded ledger state.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/Rhymond/go-money"
	md "github.com/nao1215/markdown"

	"github.com/finvest/mymoney"
)

// History renders the investor's recorded monthly balances as a markdown
// document: one row per recorded month, one column per asset plus a total,
// formatted in the profile currency.
func History(l *mymoney.Ledger, investor, currency string, assetOrder []string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Portfolio history for %s", investor))

	header := append([]string{"Month"}, assetOrder...)
	header = append(header, "Total")

	var rows [][]string
	for month, balances := range l.History(investor) {
		row := []string{month.String()}
		var total int64
		for _, b := range balances {
			total += b.Int()
			row = append(row, display(b.Int(), currency))
		}
		row = append(row, display(total, currency))
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		doc.PlainText("No months recorded.")
		return doc.String()
	}
	doc.Table(md.TableSet{Header: header, Rows: rows})
	return doc.String()
}

// display formats a whole-unit amount in the given currency.
func display(units int64, currency string) string {
	cur := money.GetCurrency(currency)
	if cur == nil {
		cur = money.GetCurrency(money.INR)
	}
	factor := int64(1)
	for range cur.Fraction {
		factor *= 10
	}
	return money.New(units*factor, cur.Code).Display()
}
