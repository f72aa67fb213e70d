package listing

// ModalState is the exclusive modal sub-state of a list screen. It is a
// sum type: states that act on a record carry it, so "data present unless
// closed or creating" holds structurally instead of by runtime convention.
type ModalState[T any] interface {
	isModal()
}

type ModalClosed[T any] struct{}

type ModalCreate[T any] struct{}

type ModalEdit[T any] struct{ Record T }

type ModalDelete[T any] struct{ Record T }

type ModalView[T any] struct{ Record T }

func (ModalClosed[T]) isModal() {}
func (ModalCreate[T]) isModal() {}
func (ModalEdit[T]) isModal()   {}
func (ModalDelete[T]) isModal() {}
func (ModalView[T]) isModal()   {}
