package domain

import "time"

// DefaultStoreName используется при ленивом создании настроек.
const DefaultStoreName = "Soares Modas"

// StoreSettings — единственная строка настроек витрины.
type StoreSettings struct {
	ID               int64
	LogoURL          *string
	IconURL          *string
	StoreName        string
	StoreDescription *string
	UpdatedAt        time.Time
}

func NewStoreSettings(name string) *StoreSettings {
	if name == "" {
		name = DefaultStoreName
	}
	return &StoreSettings{StoreName: name}
}

type StoreSettingsPatch struct {
	LogoURL          *string
	IconURL          *string
	StoreName        *string
	StoreDescription *string
}

// Apply применяет изменения и проставляет UpdatedAt.
func (s StoreSettings) Apply(patch StoreSettingsPatch, now time.Time) StoreSettings {
	if patch.LogoURL != nil {
		s.LogoURL = patch.LogoURL
	}
	if patch.IconURL != nil {
		s.IconURL = patch.IconURL
	}
	if patch.StoreName != nil {
		s.StoreName = *patch.StoreName
	}
	if patch.StoreDescription != nil {
		s.StoreDescription = patch.StoreDescription
	}
	s.UpdatedAt = now
	return s
}
