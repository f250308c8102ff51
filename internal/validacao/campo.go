package validacao

import "encoding/json"

// Campo distingue, num update parcial, "não enviado" de "enviado como null" e de um valor.
type Campo[T any] struct {
	Presente bool
	Nulo     bool
	Valor    T
}

func (c *Campo[T]) UnmarshalJSON(b []byte) error {
	c.Presente = true
	if string(b) == "null" {
		c.Nulo = true
		return nil
	}
	return json.Unmarshal(b, &c.Valor)
}

// Definido indica que veio um valor (não null).
func (c Campo[T]) Definido() bool { return c.Presente && !c.Nulo }

func Valor[T any](v T) Campo[T] { return Campo[T]{Presente: true, Valor: v} }

func Nulo[T any]() Campo[T] { return Campo[T]{Presente: true, Nulo: true} }
