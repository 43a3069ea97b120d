package orderevents

import (
	"context"
	"strings"

	"food-marketplace/internal/domain"
)

type actionFunc func(context.Context, domain.OrderEvent) error

type actionFactory struct {
	byStatus map[domain.OrderStatus]actionFunc
}

func newActionFactory(onPicked, onFinished actionFunc) *actionFactory {
	return &actionFactory{
		byStatus: map[domain.OrderStatus]actionFunc{
			domain.OrderPicked:    onPicked,
			domain.OrderDelivered: onFinished,
			domain.OrderCancelled: onFinished,
		},
	}
}

func (f *actionFactory) get(status domain.OrderStatus) (actionFunc, bool) {
	status = domain.OrderStatus(strings.ToLower(strings.TrimSpace(string(status))))
	fn, ok := f.byStatus[status]
	return fn, ok
}
