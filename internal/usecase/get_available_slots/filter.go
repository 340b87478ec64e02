package get_available_slots

import "github.com/m04kA/SMC-ScreenAvailability/internal/domain"

// filterAvailableSlots оставляет слоты, которые не пересекаются ни с одним окном недоступности
// Окна могут пересекаться между собой, учитывается их объединение
// Порядок слотов сохраняется
func filterAvailableSlots(slots []*domain.Slot, windows []*domain.Unavailability) []*domain.Slot {
	available := make([]*domain.Slot, 0, len(slots))

	for _, slot := range slots {
		if !overlapsAny(slot, windows) {
			available = append(available, slot)
		}
	}

	return available
}

func overlapsAny(slot *domain.Slot, windows []*domain.Unavailability) bool {
	for _, w := range windows {
		if slot.Overlaps(w) {
			return true
		}
	}
	return false
}
