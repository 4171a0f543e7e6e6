package clock

import "time"

// Clock isola time.Now para que a regra de antecedência e o
// agendador de lembretes sejam testáveis com tempo simulado.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func System() Clock { return systemClock{} }
