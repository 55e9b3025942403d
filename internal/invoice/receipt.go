package invoice

import (
	"bytes"
	"fmt"
	"html/template"
)

// receiptTemplate renders the HTML receipt email body.
var receiptTemplate = template.Must(template.New("receipt").Parse(`<!DOCTYPE html>
<html>
<body style="margin:0;padding:0;background:#f3f4f6;font-family:Helvetica,Arial,sans-serif;">
  <div style="max-width:560px;margin:24px auto;background:#ffffff;border-radius:8px;overflow:hidden;">
    <div style="background:#111827;padding:24px;">
      <span style="color:#ffffff;font-size:22px;font-weight:bold;">Creative</span>
      <span style="color:#818cf8;font-size:22px;font-weight:bold;">Cascade</span>
    </div>
    <div style="padding:24px;">
      <h2 style="color:#111827;margin-top:0;">Thanks for your purchase, {{.BuyerName}}!</h2>
      <p style="color:#6b7280;">Your payment was received and your downloads are ready in your account.</p>
      <p style="color:#6b7280;margin-bottom:4px;">Invoice <strong style="color:#111827;">{{.Number}}</strong> &middot; Order #{{.OrderID}}</p>
      <table style="width:100%;border-collapse:collapse;margin:16px 0;">
        <tr style="background:#f3f4f6;">
          <th style="text-align:left;padding:8px;color:#6b7280;font-size:12px;">PRODUCT</th>
          <th style="text-align:left;padding:8px;color:#6b7280;font-size:12px;">CATEGORY</th>
          <th style="text-align:right;padding:8px;color:#6b7280;font-size:12px;">PRICE</th>
        </tr>
        {{range .Items}}
        <tr>
          <td style="padding:8px;color:#111827;border-bottom:1px solid #e5e7eb;">{{.Name}}</td>
          <td style="padding:8px;color:#6b7280;border-bottom:1px solid #e5e7eb;">{{.Category}}</td>
          <td style="padding:8px;color:#111827;text-align:right;border-bottom:1px solid #e5e7eb;">&#8377;{{.Price.StringFixed 2}}</td>
        </tr>
        {{end}}
      </table>
      <p style="text-align:right;color:#6b7280;margin:4px 0;">Subtotal: &#8377;{{.Subtotal.StringFixed 2}}</p>
      <p style="text-align:right;color:#6b7280;margin:4px 0;">Transaction fee: &#8377;{{.Fee.StringFixed 2}}</p>
      <p style="text-align:right;color:#111827;font-size:18px;margin:8px 0;"><strong>Total: &#8377;{{.Total.StringFixed 2}}</strong></p>
    </div>
    <div style="padding:16px 24px;background:#f9fafb;color:#9ca3af;font-size:12px;">
      This is an automated receipt from Creative Cascade. Your invoice is attached as PDF.
    </div>
  </div>
</body>
</html>`))

// RenderReceiptHTML produces the receipt email body for a settled order.
func RenderReceiptHTML(data Data) (string, error) {
	var buf bytes.Buffer
	if err := receiptTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render receipt email: %w", err)
	}
	return buf.String(), nil
}
