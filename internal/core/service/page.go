package service

import "github.com/springcrm/crm-api/internal/core/ports"

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

func normalizePage(p ports.Page) ports.Page {
	if p.Number < 0 {
		p.Number = 0
	}
	switch {
	case p.Size <= 0:
		p.Size = defaultPageSize
	case p.Size > maxPageSize:
		p.Size = maxPageSize
	}
	return p
}
