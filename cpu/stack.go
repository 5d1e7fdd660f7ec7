package cpu

const (
	STACK_LIMIT = 6 // Maximum exception nesting, one per priority level.
)

// ExceptionStack holds pending exceptions, most urgent on top.
type ExceptionStack struct {
	Data []Exception
}

// Push adds an exception. It is accepted only when the stack is empty or
// the exception has strictly higher priority than the top.
func (s *ExceptionStack) Push(e Exception) (ok bool) {
	top, pending := s.Peek()
	if pending && e.Priority >= top.Priority {
		return
	}
	if s.Full() {
		return
	}

	s.Data = append(s.Data, e)
	ok = true
	return
}

func (s *ExceptionStack) Pop() (e Exception, ok bool) {
	e, ok = s.Peek()
	if ok {
		s.Data = s.Data[:len(s.Data)-1]
	}
	return
}

func (s *ExceptionStack) Empty() bool {
	return len(s.Data) == 0
}

func (s *ExceptionStack) Full() bool {
	return len(s.Data) == STACK_LIMIT
}

func (s *ExceptionStack) Peek() (e Exception, ok bool) {
	if s.Empty() {
		return
	}

	return s.Data[len(s.Data)-1], true
}

func (s *ExceptionStack) Reset() {
	if len(s.Data) > 0 {
		s.Data = s.Data[:0]
	}
}
