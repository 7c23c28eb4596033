package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"

	"encore.dev/beta/errs"

	"encore.app/storefront/model"
)

var orderTemplate = template.Must(template.New("order").Funcs(template.FuncMap{
	"rupees": formatRupees,
}).Parse(`<h2>{{.Heading}}</h2>
<p>Order <strong>{{.Order.OrderNumber}}</strong></p>
{{- if .Order.Items}}
<table>
{{- range .Order.Items}}
<tr><td>{{.ProductName}} &times; {{.Quantity}}</td><td>{{rupees .TotalCents}}</td></tr>
{{- end}}
</table>
{{- end}}
<p>Subtotal: {{rupees .Order.SubtotalCents}}<br>
Shipping: {{rupees .Order.ShippingCents}}<br>
Tax: {{rupees .Order.TaxCents}}<br>
{{- if .Order.DiscountCents}}
Discount: -{{rupees .Order.DiscountCents}}<br>
{{- end}}
<strong>Total: {{rupees .Order.TotalCents}}</strong></p>
<p>{{.Footer}}</p>`))

func (b *business) SendOrderConfirmation(ctx context.Context, to string, order *model.Order) error {
	msg, err := renderOrderEmail(to, order,
		"Order confirmed: "+order.OrderNumber,
		"Thank you for your order!",
		"We will let you know when it ships.")
	if err != nil {
		return err
	}
	return b.Send(ctx, msg)
}

func (b *business) SendOrderCancellation(ctx context.Context, to string, order *model.Order) error {
	msg, err := renderOrderEmail(to, order,
		"Order cancelled: "+order.OrderNumber,
		"Your order has been cancelled",
		"Any payment made will be refunded to the original method.")
	if err != nil {
		return err
	}
	return b.Send(ctx, msg)
}

func renderOrderEmail(to string, order *model.Order, subject, heading, footer string) (model.EmailMessage, error) {
	var buf bytes.Buffer
	if err := orderTemplate.Execute(&buf, map[string]any{
		"Heading": heading,
		"Order":   order,
		"Footer":  footer,
	}); err != nil {
		return model.EmailMessage{}, &errs.Error{Code: errs.Internal, Message: "failed to render email"}
	}

	var text strings.Builder
	fmt.Fprintf(&text, "%s\nOrder %s\n", heading, order.OrderNumber)
	for _, item := range order.Items {
		fmt.Fprintf(&text, "%s x %d: %s\n", item.ProductName, item.Quantity, formatRupees(item.TotalCents))
	}
	fmt.Fprintf(&text, "Total: %s\n%s\n", formatRupees(order.TotalCents), footer)

	return model.EmailMessage{To: to, Subject: subject, HTML: buf.String(), Text: text.String()}, nil
}

// formatRupees renders paise as ₹1,234.50 using Indian digit grouping.
func formatRupees(paise int64) string {
	sign := ""
	if paise < 0 {
		sign = "-"
		paise = -paise
	}
	whole := fmt.Sprintf("%d", paise/100)
	if len(whole) > 3 {
		head, tail := whole[:len(whole)-3], whole[len(whole)-3:]
		var groups []string
		for len(head) > 2 {
			groups = append([]string{head[len(head)-2:]}, groups...)
			head = head[:len(head)-2]
		}
		groups = append([]string{head}, groups...)
		whole = strings.Join(groups, ",") + "," + tail
	}
	return fmt.Sprintf("%s₹%s.%02d", sign, whole, paise%100)
}
