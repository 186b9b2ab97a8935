package services

import (
	"fmt"
	"strings"

	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/models"
	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"
)

var (
	inkColor   = color.Color{Red: 28, Green: 28, Blue: 30}
	mutedColor = color.Color{Red: 118, Green: 118, Blue: 124}
)

func money(currency string, v float64) string {
	return fmt.Sprintf("%s %.2f", currency, v)
}

func textProps(size float64, bold bool, align consts.Align, c color.Color) props.Text {
	style := consts.Normal
	if bold {
		style = consts.Bold
	}
	return props.Text{Size: size, Style: style, Align: align, Color: c}
}

// RenderInvoicePDF lays out the order as an A4 invoice
func RenderInvoicePDF(shopName string, order models.Order) ([]byte, error) {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 20, 20)

	addr := order.ShippingAddress.Data()
	cur := order.Currency

	m.Row(14, func() {
		m.Col(8, func() { m.Text(strings.ToUpper(shopName), textProps(18, true, consts.Left, inkColor)) })
		m.Col(4, func() { m.Text("INVOICE", textProps(18, true, consts.Right, inkColor)) })
	})
	m.Row(6, func() {
		m.Col(6, func() { m.Text("SHIP TO", textProps(8, true, consts.Left, mutedColor)) })
		m.Col(6, func() {
			m.Text(order.OrderNumber, textProps(10, true, consts.Right, inkColor))
		})
	})

	left := []string{addr.FullName, addr.Line1, addr.Line2,
		strings.TrimSpace(fmt.Sprintf("%s, %s %s", addr.City, addr.State, addr.PostalCode)),
		addr.Country, order.Email}
	right := []string{
		"Date: " + order.CreatedAt.Format("Jan 02, 2006"),
		"Status: " + string(order.Status),
	}
	if order.PaymentReference != "" {
		right = append(right, "Payment: "+order.PaymentReference)
	}
	for i := 0; i < len(left) || i < len(right); i++ {
		var l, r string
		if i < len(left) {
			l = left[i]
		}
		if i < len(right) {
			r = right[i]
		}
		if l == "" && r == "" {
			continue
		}
		m.Row(5, func() {
			m.Col(6, func() { m.Text(l, textProps(9, false, consts.Left, inkColor)) })
			m.Col(6, func() { m.Text(r, textProps(9, false, consts.Right, mutedColor)) })
		})
	}

	m.Row(8, func() {})
	m.TableList(
		[]string{"Item", "Variant", "Qty", "Unit", "Total"},
		invoiceLines(order),
		props.TableList{
			HeaderProp:         props.TableListContent{Size: 8, GridSizes: []uint{5, 2, 1, 2, 2}, Style: consts.Bold},
			ContentProp:        props.TableListContent{Size: 9, GridSizes: []uint{5, 2, 1, 2, 2}},
			Align:              consts.Left,
			HeaderContentSpace: 2,
			Line:               true,
		},
	)

	m.Row(6, func() {})
	summary := [][2]string{
		{"Subtotal", money(cur, order.Subtotal)},
	}
	if order.DiscountAmount > 0 {
		code := ""
		if order.DiscountCode != nil {
			code = " (" + *order.DiscountCode + ")"
		}
		summary = append(summary, [2]string{"Discount" + code, "-" + money(cur, order.DiscountAmount)})
	}
	summary = append(summary, [2]string{"Shipping", money(cur, order.ShippingCost)})
	for _, row := range summary {
		m.Row(5, func() {
			m.ColSpace(6)
			m.Col(3, func() { m.Text(row[0], textProps(9, false, consts.Right, mutedColor)) })
			m.Col(3, func() { m.Text(row[1], textProps(9, false, consts.Right, inkColor)) })
		})
	}
	m.Row(9, func() {
		m.ColSpace(6)
		m.Col(3, func() { m.Text("Total", textProps(12, true, consts.Right, inkColor)) })
		m.Col(3, func() { m.Text(money(cur, order.TotalAmount), textProps(12, true, consts.Right, inkColor)) })
	})

	m.Row(12, func() {})
	m.Row(5, func() {
		m.Col(12, func() { m.Text("Thank you for shopping with "+shopName+".", textProps(8, false, consts.Left, mutedColor)) })
	})

	buf, err := m.Output()
	if err != nil {
		return nil, fmt.Errorf("failed to render invoice: %w", err)
	}
	return buf.Bytes(), nil
}

func invoiceLines(order models.Order) [][]string {
	rows := make([][]string, 0, len(order.Items))
	for _, it := range order.Items {
		var variant []string
		if it.Size != nil {
			variant = append(variant, *it.Size)
		}
		if it.Color != nil {
			variant = append(variant, *it.Color)
		}
		rows = append(rows, []string{
			it.ProductName,
			strings.Join(variant, " / "),
			fmt.Sprintf("%d", it.Quantity),
			money(order.Currency, it.UnitPrice),
			money(order.Currency, it.LineTotal),
		})
	}
	return rows
}
