// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package villain

import "context"

type Repository interface {
	ListVillains(context context.Context, filter Filter, limit, offset int) ([]*Villain, int, error)
	GetVillain(context context.Context, id int) (*Villain, error)
	CreateVillain(context context.Context, v *Villain) error

	// UpdateVillain replaces the row. A nil AddedBy keeps the stored value.
	UpdateVillain(context context.Context, v *Villain) error

	DeleteVillain(context context.Context, id int) error
}
