package facility

import (
	"sync"
	"testing"
	"time"

	"dmv/internal/db"
	apperrors "dmv/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2023, time.June, 14, 15, 30, 0, 0, time.UTC)

func fixedClock(t time.Time) Clock {
	return ClockFunc(func() time.Time { return t })
}

func newTremont() *Facility {
	return New("DMV Tremont Branch", "2855 Tremont Place Suite 118 Denver CO 80205", "(720) 865-4600",
		WithClock(fixedClock(testNow)))
}

func newCruz() *db.Vehicle {
	return db.NewVehicle("123456789abcdefgh", 2012, "Chevrolet", "Cruz", db.EngineICE)
}

func newBolt() *db.Vehicle {
	return db.NewVehicle("987654321abcdefgh", 2019, "Chevrolet", "Bolt", db.EngineEV)
}

func newCamaro() *db.Vehicle {
	return db.NewVehicle("1a2b3c4d5e6f", 1969, "Chevrolet", "Camaro", db.EngineICE)
}

func TestNewFacility(t *testing.T) {
	f := newTremont()
	assert.Equal(t, "DMV Tremont Branch", f.Name())
	assert.Equal(t, "2855 Tremont Place Suite 118 Denver CO 80205", f.Address())
	assert.Equal(t, "(720) 865-4600", f.Phone())
	assert.Empty(t, f.Services())
	assert.Equal(t, 0, f.CollectedFees())
	assert.Empty(t, f.RegisteredVehicles())
}

func TestAddServiceKeepsOrderAndDuplicates(t *testing.T) {
	f := newTremont()
	f.AddService("New Drivers License")
	f.AddService("Renew Drivers License")
	f.AddService(ServiceVehicleRegistration)
	f.AddService(ServiceVehicleRegistration)

	assert.Equal(t, []string{"New Drivers License", "Renew Drivers License", "Vehicle Registration", "Vehicle Registration"}, f.Services())
}

func TestServicesReturnsCopy(t *testing.T) {
	f := newTremont()
	f.AddService(ServiceRoadTest)
	services := f.Services()
	services[0] = "tampered"
	assert.Equal(t, []string{ServiceRoadTest}, f.Services())
}

func TestRegisterVehicleRequiresService(t *testing.T) {
	f := newTremont()
	cruz := newCruz()

	_, err := f.RegisterVehicle(cruz)
	assert.ErrorIs(t, err, apperrors.ErrServiceNotOffered)
	assert.Equal(t, 0, f.CollectedFees())
	assert.Empty(t, f.RegisteredVehicles())
	assert.False(t, cruz.Registered())
	assert.True(t, cruz.RegistrationDate().IsZero())
}

func TestRegisterVehicleScenario(t *testing.T) {
	f := newTremont()
	cruz, camaro, bolt := newCruz(), newCamaro(), newBolt()

	_, err := f.RegisterVehicle(bolt)
	require.ErrorIs(t, err, apperrors.ErrServiceNotOffered)

	f.AddService(ServiceVehicleRegistration)
	today := time.Date(2023, time.June, 14, 0, 0, 0, 0, time.UTC)

	reg, err := f.RegisterVehicle(cruz)
	require.NoError(t, err)
	assert.Equal(t, db.PlateRegular, reg.PlateType)
	assert.Equal(t, 100, reg.Fee)
	assert.Equal(t, 100, reg.CollectedFees)
	assert.Equal(t, 100, f.CollectedFees())
	assert.Len(t, f.RegisteredVehicles(), 1)
	assert.Equal(t, db.PlateRegular, cruz.PlateType())
	assert.Equal(t, today, cruz.RegistrationDate())

	reg, err = f.RegisterVehicle(camaro)
	require.NoError(t, err)
	assert.Equal(t, 25, reg.Fee)
	assert.Equal(t, 125, f.CollectedFees())
	assert.Len(t, f.RegisteredVehicles(), 2)
	assert.Equal(t, db.PlateAntique, camaro.PlateType())
	assert.Equal(t, today, camaro.RegistrationDate())

	reg, err = f.RegisterVehicle(bolt)
	require.NoError(t, err)
	assert.Equal(t, 200, reg.Fee)
	assert.Equal(t, 325, f.CollectedFees())
	assert.Equal(t, []*db.Vehicle{cruz, camaro, bolt}, f.RegisteredVehicles())
	assert.Equal(t, db.PlateEV, bolt.PlateType())
	assert.Equal(t, today, bolt.RegistrationDate())
}

func TestRegisterVehicleReadsClockPerCall(t *testing.T) {
	now := time.Date(1994, time.December, 31, 23, 0, 0, 0, time.UTC)
	f := New("DMV Northeast Branch", "4685 Peoria Street Suite 101 Denver CO 80239", "(720) 865-4600",
		WithClock(ClockFunc(func() time.Time { return now })))
	f.AddService(ServiceVehicleRegistration)

	first := db.NewVehicle("a", 1969, "Chevrolet", "Camaro", db.EngineICE)
	reg, err := f.RegisterVehicle(first)
	require.NoError(t, err)
	assert.Equal(t, db.PlateRegular, reg.PlateType, "1994-1969 is exactly 25 years")

	now = now.Add(2 * time.Hour)
	second := db.NewVehicle("b", 1969, "Chevrolet", "Camaro", db.EngineICE)
	reg, err = f.RegisterVehicle(second)
	require.NoError(t, err)
	assert.Equal(t, db.PlateAntique, reg.PlateType)
	assert.Equal(t, time.Date(1995, time.January, 1, 0, 0, 0, 0, time.UTC), second.RegistrationDate())
	assert.Equal(t, 125, f.CollectedFees())
}

func TestRegisterVehicleTwiceIsRejected(t *testing.T) {
	f := newTremont()
	f.AddService(ServiceVehicleRegistration)
	other := New("DMV Northeast Branch", "", "", WithClock(fixedClock(testNow)))
	other.AddService(ServiceVehicleRegistration)
	cruz := newCruz()

	_, err := f.RegisterVehicle(cruz)
	require.NoError(t, err)

	_, err = f.RegisterVehicle(cruz)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyRegistered)
	_, err = other.RegisterVehicle(cruz)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyRegistered)

	assert.Equal(t, 100, f.CollectedFees())
	assert.Len(t, f.RegisteredVehicles(), 1)
	assert.Equal(t, 0, other.CollectedFees())
	assert.Empty(t, other.RegisteredVehicles())
}

func TestRegisterVehicleConcurrentFeesAddUp(t *testing.T) {
	f := newTremont()
	f.AddService(ServiceVehicleRegistration)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			engine := db.EngineICE
			if i%2 == 0 {
				engine = db.EngineEV
			}
			_, _ = f.RegisterVehicle(db.NewVehicle(string(rune('A'+i)), 2015, "Make", "Model", engine))
		}(i)
	}
	wg.Wait()

	assert.Len(t, f.RegisteredVehicles(), 50)
	assert.Equal(t, 25*200+25*100, f.CollectedFees())
}

func TestAdministerWrittenTest(t *testing.T) {
	t.Run("not offered", func(t *testing.T) {
		f := newTremont()
		bruce := db.NewRegistrant("Bruce", 18, true)
		assert.ErrorIs(t, f.AdministerWrittenTest(bruce), apperrors.ErrServiceNotOffered)
		assert.False(t, bruce.LicenseData().Written)
	})

	t.Run("passes with permit and age", func(t *testing.T) {
		f := newTremont()
		f.AddService(ServiceWrittenTest)
		bruce := db.NewRegistrant("Bruce", 18, true)
		require.NoError(t, f.AdministerWrittenTest(bruce))
		assert.Equal(t, db.LicenseData{Written: true}, bruce.LicenseData())

		require.NoError(t, f.AdministerWrittenTest(bruce), "repeating a passed step is harmless")
		assert.Equal(t, db.LicenseData{Written: true}, bruce.LicenseData())
	})

	t.Run("under 16 fails even with permit", func(t *testing.T) {
		f := newTremont()
		f.AddService(ServiceWrittenTest)
		tucker := db.NewRegistrant("Tucker", 15, false)
		assert.ErrorIs(t, f.AdministerWrittenTest(tucker), apperrors.ErrUnderage)
		assert.False(t, tucker.LicenseData().Written)

		tucker.EarnPermit()
		assert.ErrorIs(t, f.AdministerWrittenTest(tucker), apperrors.ErrUnderage)
		assert.False(t, tucker.LicenseData().Written)
	})

	t.Run("requires permit", func(t *testing.T) {
		f := newTremont()
		f.AddService(ServiceWrittenTest)
		penny := db.NewRegistrant("Penny", 16, false)
		assert.ErrorIs(t, f.AdministerWrittenTest(penny), apperrors.ErrNoPermit)
		assert.False(t, penny.LicenseData().Written)

		penny.EarnPermit()
		require.NoError(t, f.AdministerWrittenTest(penny))
		assert.True(t, penny.LicenseData().Written)
	})
}

func TestAdministerRoadTest(t *testing.T) {
	f := newTremont()
	bruce := db.NewRegistrant("Bruce", 18, true)
	tucker := db.NewRegistrant("Tucker", 15, false)

	assert.ErrorIs(t, f.AdministerRoadTest(tucker), apperrors.ErrServiceNotOffered)
	f.AddService(ServiceRoadTest)
	assert.ErrorIs(t, f.AdministerRoadTest(tucker), apperrors.ErrNoPermit)
	tucker.EarnPermit()
	assert.ErrorIs(t, f.AdministerRoadTest(tucker), apperrors.ErrWrittenTestNotPassed)
	assert.Equal(t, db.LicenseData{}, tucker.LicenseData())

	f.AddService(ServiceWrittenTest)
	require.NoError(t, f.AdministerWrittenTest(bruce))
	require.NoError(t, f.AdministerRoadTest(bruce))
	assert.Equal(t, db.LicenseData{Written: true, License: true}, bruce.LicenseData())
}

func TestAdministerRoadTestRequiresPermitAfterWritten(t *testing.T) {
	f := newTremont()
	f.AddService(ServiceWrittenTest)
	f.AddService(ServiceRoadTest)
	bruce := db.NewRegistrant("Bruce", 18, true)

	require.NoError(t, f.AdministerWrittenTest(bruce))
	bruce.UnearnPermit()
	assert.ErrorIs(t, f.AdministerRoadTest(bruce), apperrors.ErrNoPermit)
	assert.False(t, bruce.LicenseData().License)
}

func TestRenewDriversLicense(t *testing.T) {
	f := newTremont()
	bruce := db.NewRegistrant("Bruce", 18, true)

	assert.ErrorIs(t, f.RenewDriversLicense(bruce), apperrors.ErrServiceNotOffered)
	f.AddService(ServiceRenewLicense)
	f.AddService(ServiceWrittenTest)
	f.AddService(ServiceRoadTest)
	assert.ErrorIs(t, f.RenewDriversLicense(bruce), apperrors.ErrNotLicensed)

	require.NoError(t, f.AdministerWrittenTest(bruce))
	assert.ErrorIs(t, f.RenewDriversLicense(bruce), apperrors.ErrNotLicensed)

	require.NoError(t, f.AdministerRoadTest(bruce))
	require.NoError(t, f.RenewDriversLicense(bruce))
	assert.Equal(t, db.LicenseData{Written: true, License: true, Renewed: true}, bruce.LicenseData())
}

func TestLicensingAcrossFacilities(t *testing.T) {
	tremont := newTremont()
	tremont.AddService(ServiceWrittenTest)
	northeast := New("DMV Northeast Branch", "", "", WithClock(fixedClock(testNow)))
	northeast.AddService(ServiceRoadTest)
	penny := db.NewRegistrant("Penny", 16, true)

	assert.ErrorIs(t, northeast.AdministerWrittenTest(penny), apperrors.ErrServiceNotOffered)
	require.NoError(t, tremont.AdministerWrittenTest(penny))
	require.NoError(t, northeast.AdministerRoadTest(penny))
	assert.True(t, penny.LicenseData().License)
}
