package entity

// RequiredDeliveryFields must all be present as keys in a delivery
// submission. Values are stored verbatim, unchecked.
var RequiredDeliveryFields = []string{"street", "house", "floor", "apartment"}
