package engine

// Byte sizes the rent schedule charges for. The registry pays for its fixed
// header plus one identifier slot per pooled source.
const (
	registryHeaderBytes = 8 + 4
	registryStateBytes  = 8 + 32 + 4 + 4 + 1
	sourceSlotBytes     = 32
	outcomeRecordBytes  = 8 + 32 + 1 + 32
)

// DefaultRentPerByte is the deposit charged per reserved byte.
const DefaultRentPerByte int64 = 7

// RentSchedule prices storage reservations.
type RentSchedule struct {
	PerByte int64
}

func (r RentSchedule) perByte() int64 {
	if r.PerByte <= 0 {
		return DefaultRentPerByte
	}
	return r.PerByte
}

// RegistryBytes is the storage a registry with n sources occupies.
func RegistryBytes(n int) int {
	return registryStateBytes + registryHeaderBytes + sourceSlotBytes*n
}

// RegistryDeposit is the deposit a registry with n sources must hold.
func (r RentSchedule) RegistryDeposit(n int) int64 {
	return r.perByte() * int64(RegistryBytes(n))
}

// OutcomeDeposit is the deposit an outcome record holds until claimed.
func (r RentSchedule) OutcomeDeposit() int64 {
	return r.perByte() * outcomeRecordBytes
}
