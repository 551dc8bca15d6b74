package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/maryamfaizan53/pixel-perfect-commerce-sub000/internal/modules/webhook"
)

// Sends a signed sample order webhook against a running webhook service.
func main() {
	url := flag.String("url", "http://localhost:8081/webhooks/shopify/orders", "Webhook URL")
	secret := flag.String("secret", os.Getenv("SHOPIFY_WEBHOOK_SECRET"), "Webhook HMAC secret")
	orderID := flag.String("order-id", fmt.Sprintf("%d", time.Now().UnixNano()), "Shopify order id")
	orderNumber := flag.String("order-number", "1001", "Order number")
	email := flag.String("email", "customer@example.com", "Customer email")
	financial := flag.String("financial-status", "paid", "Financial status (pending, paid, refunded)")
	fulfillment := flag.String("fulfillment-status", "", "Fulfillment status (fulfilled, partial, in_transit)")
	dryRun := flag.Bool("dry-run", false, "Only print the signed request, don't send")
	flag.Parse()

	if *secret == "" {
		fmt.Fprintln(os.Stderr, "Error: secret not provided and SHOPIFY_WEBHOOK_SECRET not set")
		os.Exit(1)
	}

	body := []byte(fmt.Sprintf(`{
  "id": %s,
  "order_number": %s,
  "name": "#%s",
  "email": %q,
  "financial_status": %q,
  "fulfillment_status": %q,
  "total_price": "59.98",
  "subtotal_price": "49.99",
  "total_tax": "4.99",
  "total_shipping_price_set": {"shop_money": {"amount": "5.00", "currency_code": "USD"}},
  "currency": "USD",
  "customer": {"first_name": "Test", "last_name": "Customer"},
  "line_items": [
    {
      "product_id": 8001,
      "variant_id": 9001,
      "title": "Sample Tee",
      "variant_title": "M / Black",
      "quantity": 2,
      "price": "24.99"
    }
  ],
  "shipping_address": {"address1": "1 Main St", "city": "Springfield", "province": "IL", "zip": "62701", "country": "US"}
}`, *orderID, *orderNumber, *orderNumber, *email, *financial, *fulfillment))

	sig := webhook.Sign([]byte(*secret), body)

	fmt.Printf("%s: %s\n", webhook.SignatureHeader, sig)
	fmt.Printf("Body: %s\n", string(body))

	if *dryRun {
		fmt.Println("\n[DRY RUN] Not sending request")
		return
	}

	fmt.Printf("\nSending to %s...\n", *url)
	req, err := http.NewRequest(http.MethodPost, *url, bytes.NewReader(body))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building request: %v\n", err)
		os.Exit(1)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(webhook.SignatureHeader, sig)
	req.Header.Set("X-Shopify-Topic", "orders/create")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error sending request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	fmt.Printf("Status: %s\nResponse: %s\n", resp.Status, string(respBody))
}
