package tx

import "errors"

// ErrSerializationConflict - конфликт сериализации не разрешился за отведенные повторы.
var ErrSerializationConflict = errors.New("transaction serialization conflict")
