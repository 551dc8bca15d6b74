package notify

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/shopspring/decimal"
)

var templateFuncs = template.FuncMap{
	"money": func(currency string, amount decimal.Decimal) string {
		return currency + " " + amount.StringFixed(2)
	},
}

var confirmationTmpl = template.Must(template.New("confirmation").Funcs(templateFuncs).Parse(`<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
  </head>
  <body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; background: #f5f5f5; margin: 0; padding: 20px;">
    <div style="max-width: 600px; margin: 0 auto; background: white; border-radius: 12px; overflow: hidden; box-shadow: 0 2px 8px rgba(0,0,0,0.1);">
      <div style="background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); padding: 32px; text-align: center;">
        <h1 style="margin: 0; color: white; font-size: 24px;">Order Confirmed!</h1>
      </div>

      <div style="padding: 32px;">
        <p style="color: #333; font-size: 16px; line-height: 1.5;">
          Hi {{or .CustomerName "there"}},
        </p>
        <p style="color: #666; font-size: 14px; line-height: 1.5;">
          Thank you for your order! We're getting it ready to be shipped. We'll notify you when it's on its way.
        </p>

        <div style="background: #f9f9f9; border-radius: 8px; padding: 16px; margin: 24px 0;">
          <p style="margin: 0; color: #666; font-size: 14px;">
            <strong style="color: #333;">Order Number:</strong> #{{.OrderNumber}}
          </p>
        </div>

        <h2 style="color: #333; font-size: 18px; margin: 24px 0 16px 0;">Order Summary</h2>
        <table style="width: 100%; border-collapse: collapse;">
          <thead>
            <tr style="background: #f5f5f5;">
              <th style="padding: 12px; text-align: left; color: #666; font-weight: 600;">Item</th>
              <th style="padding: 12px; text-align: center; color: #666; font-weight: 600;">Qty</th>
              <th style="padding: 12px; text-align: right; color: #666; font-weight: 600;">Price</th>
            </tr>
          </thead>
          <tbody>
            {{range .Items}}<tr>
              <td style="padding: 12px; border-bottom: 1px solid #eee;">{{.Title}}</td>
              <td style="padding: 12px; border-bottom: 1px solid #eee; text-align: center;">{{.Quantity}}</td>
              <td style="padding: 12px; border-bottom: 1px solid #eee; text-align: right;">{{money $.CurrencyCode .Price}}</td>
            </tr>
            {{end}}
          </tbody>
          <tfoot>
            <tr>
              <td colspan="2" style="padding: 16px 12px; text-align: right; font-weight: 600; color: #333;">Total</td>
              <td style="padding: 16px 12px; text-align: right; font-weight: 600; color: #333; font-size: 18px;">{{money .CurrencyCode .TotalPrice}}</td>
            </tr>
          </tfoot>
        </table>

        {{with .ShippingAddress}}
        <div style="margin-top: 24px; padding: 16px; background: #f9f9f9; border-radius: 8px;">
          <h3 style="margin: 0 0 12px 0; color: #333;">Shipping Address</h3>
          <p style="margin: 0; color: #666; line-height: 1.5;">
            {{.Address1}}<br>
            {{.City}}, {{.Province}} {{.Zip}}<br>
            {{.Country}}
          </p>
        </div>
        {{end}}
      </div>

      <div style="background: #f5f5f5; padding: 24px; text-align: center;">
        <p style="margin: 0; color: #999; font-size: 12px;">
          If you have any questions, reply to this email or contact our support team.
        </p>
      </div>
    </div>
  </body>
</html>
`))

var shippedTmpl = template.Must(template.New("shipped").Funcs(templateFuncs).Parse(`<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
  </head>
  <body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; background: #f5f5f5; margin: 0; padding: 20px;">
    <div style="max-width: 600px; margin: 0 auto; background: white; border-radius: 12px; overflow: hidden; box-shadow: 0 2px 8px rgba(0,0,0,0.1);">
      <div style="background: linear-gradient(135deg, #11998e 0%, #38ef7d 100%); padding: 32px; text-align: center;">
        <h1 style="margin: 0; color: white; font-size: 24px;">Your Order Has Shipped! 📦</h1>
      </div>

      <div style="padding: 32px;">
        <p style="color: #333; font-size: 16px; line-height: 1.5;">
          Hi {{or .CustomerName "there"}},
        </p>
        <p style="color: #666; font-size: 14px; line-height: 1.5;">
          Great news! Your order #{{.OrderNumber}} is on its way.
        </p>

        {{if .TrackingURL}}
        <div style="margin: 24px 0; text-align: center;">
          <a href="{{.TrackingURL}}" style="display: inline-block; background: linear-gradient(135deg, #11998e 0%, #38ef7d 100%); color: white; text-decoration: none; padding: 14px 32px; border-radius: 8px; font-weight: 600;">Track Your Package</a>
        </div>
        {{end}}
      </div>

      <div style="background: #f5f5f5; padding: 24px; text-align: center;">
        <p style="margin: 0; color: #999; font-size: 12px;">
          Thank you for shopping with us!
        </p>
      </div>
    </div>
  </body>
</html>
`))

var deliveredTmpl = template.Must(template.New("delivered").Funcs(templateFuncs).Parse(`<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
  </head>
  <body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; background: #f5f5f5; margin: 0; padding: 20px;">
    <div style="max-width: 600px; margin: 0 auto; background: white; border-radius: 12px; overflow: hidden; box-shadow: 0 2px 8px rgba(0,0,0,0.1);">
      <div style="background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); padding: 32px; text-align: center;">
        <h1 style="margin: 0; color: white; font-size: 24px;">Your Order Has Arrived! 🎉</h1>
      </div>

      <div style="padding: 32px;">
        <p style="color: #333; font-size: 16px; line-height: 1.5;">
          Hi {{or .CustomerName "there"}},
        </p>
        <p style="color: #666; font-size: 14px; line-height: 1.5;">
          Your order #{{.OrderNumber}} has been delivered. We hope you love it!
        </p>

        <div style="margin: 24px 0; text-align: center;">
          <p style="color: #666; font-size: 14px;">Enjoying your purchase? Leave us a review!</p>
        </div>
      </div>

      <div style="background: #f5f5f5; padding: 24px; text-align: center;">
        <p style="margin: 0; color: #999; font-size: 12px;">
          Thank you for shopping with us!
        </p>
      </div>
    </div>
  </body>
</html>
`))

// Render produces the subject and HTML body for the payload's type.
func Render(p Payload) (subject, html string, err error) {
	var b strings.Builder
	switch p.Type {
	case TypeConfirmation:
		subject = fmt.Sprintf("Order Confirmed - #%s", p.OrderNumber)
		err = confirmationTmpl.Execute(&b, p)
	case TypeShipped:
		subject = fmt.Sprintf("Your Order Has Shipped - #%s", p.OrderNumber)
		err = shippedTmpl.Execute(&b, p)
	case TypeDelivered:
		subject = fmt.Sprintf("Your Order Has Arrived - #%s", p.OrderNumber)
		err = deliveredTmpl.Execute(&b, p)
	default:
		return "", "", fmt.Errorf("invalid email type %q", p.Type)
	}
	if err != nil {
		return "", "", err
	}
	return subject, b.String(), nil
}
