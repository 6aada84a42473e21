package response

import (
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

var copyOption = copier.Option{
	DeepCopy: true,
	Converters: []copier.TypeConverter{
		{
			SrcType: uuid.UUID{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(uuid.UUID).String(), nil
			},
		},
	},
}

// copyInto maps a read model onto its response type by field name.
func copyInto(to, from any) {
	if err := copier.CopyWithOption(to, from, copyOption); err != nil {
		panic(err)
	}
}
