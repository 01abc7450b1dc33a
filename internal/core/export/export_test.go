// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package export

// SetLimit lowers the reports written per file.
func (service *Service) SetLimit(limit int) {
	service.limit = limit
}
