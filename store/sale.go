package store

import "alphaflow-backend/services"

// ApplySale commits a finalized sale under a single lock: stock levels, the
// new ledger record, and the client spend update land together or not at all.
func (s *Store) ApplySale(res services.SaleResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, stock := range res.StockUpdates {
		if p, ok := s.products[id]; ok {
			p.Stock = stock
			s.products[id] = p
		}
	}
	s.financials = append(s.financials, res.Record)
	if res.ClientUpdate != nil {
		s.clients[res.ClientUpdate.ID] = *res.ClientUpdate
	}
}
