package epcomponents

import (
	"github.com/eventplatform/go-client-sdk/interfaces"
)

type discardFailedDeliveries struct{}

type requeueFailedDeliveries struct{}

// DiscardFailedDeliveries returns the default delivery failure policy: an event whose
// delivery failed is dropped. Delivery is best-effort and at most once; the failure is logged
// but nothing is retried.
func DiscardFailedDeliveries() interfaces.DeliveryFailureHandler {
	return discardFailedDeliveries{}
}

// RequeueFailedDeliveries returns a delivery failure policy that puts a failed event back at
// the tail of the queue, to be attempted once more on each later flush. Use this only if your
// intake service tolerates duplicate events: an event that was received but whose response was
// lost will be sent again.
func RequeueFailedDeliveries() interfaces.DeliveryFailureHandler {
	return requeueFailedDeliveries{}
}

func (discardFailedDeliveries) HandleDeliveryFailure(string, string, error) interfaces.FailureDisposition {
	return interfaces.DiscardItem
}

func (requeueFailedDeliveries) HandleDeliveryFailure(string, string, error) interfaces.FailureDisposition {
	return interfaces.RequeueItem
}
