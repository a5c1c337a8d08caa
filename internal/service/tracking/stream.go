package tracking

import (
	"context"
	"fmt"

	"dispatch/internal/entities"
)

// Stream потребляет непрерывный поток отсчетов одной сессии курьера.
// После отмены контекста ни одной записи не выполняется; перезапуск
// не требует реплея истории - первый отсчет новой сессии принимается
// безусловно.
func (t *Tracker) Stream(ctx context.Context, courierID int64, samples <-chan entities.PositionSample) error {
	if !isValidCourierID(courierID) {
		return ErrInvalidCourierID
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case sample, ok := <-samples:
			if !ok {
				return nil
			}
			if err := t.Report(ctx, courierID, sample); err != nil {
				return fmt.Errorf("report sample for courier %d: %w", courierID, err)
			}
		}
	}
}
