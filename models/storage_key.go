package models

// StorageKey names one logical slot of the encrypted session store.
// The set of keys is closed: see [StorageKeys].
type StorageKey string

const (
	// AuthToken holds the JSON-encoded [TokenData].
	AuthToken StorageKey = "authToken"
	// UserData holds the JSON-encoded [UserProfile].
	UserData StorageKey = "userData"
	// AppVersion holds the application version that last wrote the store.
	AppVersion StorageKey = "appVersion"
)

// mirrorPrefix marks the plaintext debug copy of a slot.
const mirrorPrefix = "_"

// StorageKeys returns every slot the store owns, in a stable order.
func StorageKeys() []StorageKey {
	return []StorageKey{AuthToken, UserData, AppVersion}
}

// String implements [fmt.Stringer].
func (k StorageKey) String() string {
	return string(k)
}

// Mirror returns the physical key of the plaintext debug copy of k.
func (k StorageKey) Mirror() string {
	return mirrorPrefix + string(k)
}

// Valid reports whether k belongs to the closed key set.
func (k StorageKey) Valid() bool {
	switch k {
	case AuthToken, UserData, AppVersion:
		return true
	default:
		return false
	}
}
