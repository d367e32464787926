package orders

import "strconv"

const TopicOrderCreated = "bakery.order.created"

// Partition key = order id, so events for one order stay ordered.
func PartitionKey(orderID int64) []byte {
	return []byte(strconv.FormatInt(orderID, 10))
}
