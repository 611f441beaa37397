package state

import (
	"sort"
	"sync"

	"github.com/Freeeeeet/pousada_bot/internal/model"
)

// Manager управляет состояниями пользователей
type Manager struct {
	mu     sync.RWMutex
	states map[int64]*UserData // telegramID -> UserData
}

// NewManager создаёт новый менеджер состояний
func NewManager() *Manager {
	return &Manager{
		states: make(map[int64]*UserData),
	}
}

// GetState получает текущее состояние пользователя
func (sm *Manager) GetState(telegramID int64) UserState {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if userData, exists := sm.states[telegramID]; exists {
		return userData.State
	}
	return StateNone
}

// SetState устанавливает состояние пользователя
func (sm *Manager) SetState(telegramID int64, state UserState) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if state == StateNone {
		delete(sm.states, telegramID)
		return
	}

	sm.userData(telegramID).State = state
}

// ClearState очищает состояние, данные и выделение пользователя
func (sm *Manager) ClearState(telegramID int64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	delete(sm.states, telegramID)
}

// ToggleSelection отмечает или снимает отметку со слота. Выделение другой даты сбрасывается.
// Возвращает true, если слот теперь отмечен.
func (sm *Manager) ToggleSelection(telegramID int64, date string, key model.SlotKey) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	userData := sm.userData(telegramID)
	if userData.Selection == nil || userData.Selection.Date != date {
		userData.Selection = &Selection{Date: date, Keys: make(map[model.SlotKey]bool)}
	}
	userData.State = StateSelectingSlots

	keys := userData.Selection.Keys
	if keys[key] {
		delete(keys, key)
		return false
	}
	keys[key] = true
	return true
}

// SelectedSet возвращает копию отмеченных слотов даты
func (sm *Manager) SelectedSet(telegramID int64, date string) map[model.SlotKey]bool {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	out := make(map[model.SlotKey]bool)
	userData, exists := sm.states[telegramID]
	if !exists || userData.Selection == nil || userData.Selection.Date != date {
		return out
	}
	for key := range userData.Selection.Keys {
		out[key] = true
	}
	return out
}

// Selection возвращает отмеченные слоты даты в стабильном порядке
func (sm *Manager) Selection(telegramID int64, date string) []model.SlotKey {
	set := sm.SelectedSet(telegramID, date)
	keys := make([]model.SlotKey, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].String() < keys[j].String()
	})
	return keys
}

// SelectionDate возвращает дату текущего выделения
func (sm *Manager) SelectionDate(telegramID int64) (string, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	userData, exists := sm.states[telegramID]
	if !exists || userData.Selection == nil || len(userData.Selection.Keys) == 0 {
		return "", false
	}
	return userData.Selection.Date, true
}

// ClearSelection снимает все отметки
func (sm *Manager) ClearSelection(telegramID int64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if userData, exists := sm.states[telegramID]; exists {
		userData.Selection = nil
		if userData.State == StateSelectingSlots || userData.State == StateEnteringGuestName {
			userData.State = StateNone
		}
	}
}

// userData возвращает запись пользователя, создавая её; вызывать под mu.Lock
func (sm *Manager) userData(telegramID int64) *UserData {
	userData, exists := sm.states[telegramID]
	if !exists {
		userData = &UserData{State: StateNone}
		sm.states[telegramID] = userData
	}
	return userData
}
