package notifier

import "errors"

// Multi fans a message out to every non-nil notifier and joins their errors.
type Multi []TextNotifier

func (m Multi) SendText(text string) error {
	var errs []error
	for _, n := range m {
		if n == nil {
			continue
		}
		if err := n.SendText(text); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
