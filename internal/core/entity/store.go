// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package entity

import "context"

// Repository reads the entities_entity view.
type Repository interface {
	ListAll(context context.Context, filter Filter, limit, offset int) ([]*AllEntity, int, error)
}
