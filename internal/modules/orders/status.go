package orders

// MapStatus derives the local status from the upstream fulfillment and
// financial status strings. Fulfillment wins over financial, and the
// precedence below is fixed:
//
//	fulfilled            -> delivered
//	partial, in_transit  -> shipped
//	financial paid       -> confirmed
//	financial pending    -> pending
//	financial refunded   -> cancelled
//	anything else        -> pending
func MapStatus(fulfillmentStatus, financialStatus string) Status {
	switch fulfillmentStatus {
	case "fulfilled":
		return StatusDelivered
	case "partial", "in_transit":
		return StatusShipped
	}
	switch financialStatus {
	case "paid":
		return StatusConfirmed
	case "pending":
		return StatusPending
	case "refunded":
		return StatusCancelled
	}
	return StatusPending
}
