package order_test

import (
	"testing"
	"time"

	"github.com/ericks0nmartinez/burger/internal/core/domain/model/order"
	"github.com/ericks0nmartinez/burger/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDetails() order.Details {
	return order.Details{
		CustomerName:  "Maria Silva",
		Phone:         "11987654321",
		Items:         []order.Item{{Name: "Classic Burger", Quantity: 2, Price: 25.90}},
		Address:       "Rua das Flores, 123",
		Delivery:      true,
		PaymentMethod: "cash",
		Total:         51.80,
		DeliveryFee:   8.00,
	}
}

func TestNewOrder(t *testing.T) {
	t.Run("should create order in Awaiting with a single open interval", func(t *testing.T) {
		o, err := order.NewOrder(validDetails(), baseTime)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, int64(0), o.ID())
		assert.Equal(t, order.Awaiting, o.Status())
		assert.False(t, o.Paid())
		assert.Nil(t, o.ReceivedTime())
		assert.Equal(t, baseTime, o.PlacedAt())

		timeline := o.Timeline()
		assert.Equal(t, []string{"Awaiting"}, timeline.Keys())
		iv, ok := timeline.Get("Awaiting")
		require.True(t, ok)
		assert.Equal(t, baseTime, iv.Start)
		assert.Nil(t, iv.End)
	})

	t.Run("should reject missing customer name", func(t *testing.T) {
		details := validDetails()
		details.CustomerName = ""

		o, err := order.NewOrder(details, baseTime)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject empty items", func(t *testing.T) {
		details := validDetails()
		details.Items = nil

		_, err := order.NewOrder(details, baseTime)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject non-positive item quantity", func(t *testing.T) {
		details := validDetails()
		details.Items = []order.Item{{Name: "Classic Burger", Quantity: 0, Price: 25.90}}

		_, err := order.NewOrder(details, baseTime)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject negative amounts", func(t *testing.T) {
		for _, mutate := range []func(*order.Details){
			func(d *order.Details) { d.Total = -1 },
			func(d *order.Details) { d.DeliveryFee = -0.5 },
		} {
			details := validDetails()
			mutate(&details)

			_, err := order.NewOrder(details, baseTime)

			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("should collect all validation errors", func(t *testing.T) {
		details := validDetails()
		details.CustomerName = ""
		details.Total = -10

		_, err := order.NewOrder(details, baseTime)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should reject zero value order", func(t *testing.T) {
		var o order.Order

		assert.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("should reject nil order", func(t *testing.T) {
		var o *order.Order

		assert.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_AssignID(t *testing.T) {
	t.Run("should assign a positive id once", func(t *testing.T) {
		o, err := order.NewOrder(validDetails(), baseTime)
		require.NoError(t, err)

		require.NoError(t, o.AssignID(42))
		assert.Equal(t, int64(42), o.ID())
	})

	t.Run("should reject reassignment", func(t *testing.T) {
		o, err := order.NewOrder(validDetails(), baseTime)
		require.NoError(t, err)
		require.NoError(t, o.AssignID(42))

		err = o.AssignID(43)

		assert.ErrorIs(t, err, order.ErrOrderIDAlreadyAssigned)
		assert.Equal(t, int64(42), o.ID())
	})

	t.Run("should reject non-positive ids", func(t *testing.T) {
		for _, id := range []int64{0, -1} {
			o, err := order.NewOrder(validDetails(), baseTime)
			require.NoError(t, err)

			assert.ErrorIs(t, o.AssignID(id), errs.ErrValueIsInvalid)
		}
	})
}

func TestOrder_TransitionStatus(t *testing.T) {
	t.Run("should close previous interval and open the next", func(t *testing.T) {
		o, err := order.NewOrder(validDetails(), baseTime)
		require.NoError(t, err)
		t1 := baseTime.Add(5 * time.Minute)

		require.NoError(t, o.TransitionStatus(order.Preparing, t1))

		assert.Equal(t, order.Preparing, o.Status())
		timeline := o.Timeline()

		awaiting, _ := timeline.Get("Awaiting")
		require.NotNil(t, awaiting.End)
		assert.Equal(t, t1, *awaiting.End)

		preparing, ok := timeline.Get("Preparing")
		require.True(t, ok)
		assert.Equal(t, t1, preparing.Start)
		assert.Nil(t, preparing.End)
	})

	t.Run("should track a full workflow sequence", func(t *testing.T) {
		o, err := order.NewOrder(validDetails(), baseTime)
		require.NoError(t, err)
		t1 := baseTime.Add(2 * time.Minute)
		t2 := baseTime.Add(10 * time.Minute)
		t3 := baseTime.Add(12 * time.Minute)

		require.NoError(t, o.TransitionStatus(order.Preparing, t1))
		require.NoError(t, o.TransitionStatus(order.Ready, t2))
		require.NoError(t, o.TransitionStatus(order.OutForDelivery, t3))

		timeline := o.Timeline()
		assert.Equal(t, []string{"Awaiting", "Preparing", "Ready", "OutForDelivery"}, timeline.Keys())

		awaiting, _ := timeline.Get("Awaiting")
		preparing, _ := timeline.Get("Preparing")
		ready, _ := timeline.Get("Ready")
		assert.Equal(t, t1, *awaiting.End)
		assert.Equal(t, t1, preparing.Start)
		assert.Equal(t, t2, *preparing.End)
		assert.Equal(t, t2, ready.Start)
		assert.Equal(t, t3, *ready.End)

		// Exactly one interval stays open: the current status.
		assert.Equal(t, []string{"OutForDelivery"}, timeline.OpenKeys())
	})

	t.Run("should close Delivered interval immediately", func(t *testing.T) {
		o, err := order.NewOrder(validDetails(), baseTime)
		require.NoError(t, err)
		deliveredAt := baseTime.Add(30 * time.Minute)

		require.NoError(t, o.TransitionStatus(order.Delivered, deliveredAt))

		assert.Equal(t, order.Delivered, o.Status())
		iv, ok := o.Timeline().Get("Delivered")
		require.True(t, ok)
		require.NotNil(t, iv.End)
		assert.Equal(t, deliveredAt, iv.Start)
		assert.Equal(t, deliveredAt, *iv.End)
		assert.Empty(t, o.Timeline().OpenKeys())
	})

	t.Run("should reject invalid status before any mutation", func(t *testing.T) {
		o, err := order.NewOrder(validDetails(), baseTime)
		require.NoError(t, err)

		err = o.TransitionStatus(order.Unknown, baseTime.Add(time.Minute))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, order.Awaiting, o.Status())

		iv, _ := o.Timeline().Get("Awaiting")
		assert.Nil(t, iv.End, "open interval must stay untouched on rejected transition")
		assert.Equal(t, 1, o.Timeline().Len())
	})

	t.Run("should overwrite entry when re-entering a status", func(t *testing.T) {
		o, err := order.NewOrder(validDetails(), baseTime)
		require.NoError(t, err)
		t1 := baseTime.Add(time.Minute)
		t2 := baseTime.Add(2 * time.Minute)
		t3 := baseTime.Add(3 * time.Minute)

		require.NoError(t, o.TransitionStatus(order.Preparing, t1))
		require.NoError(t, o.TransitionStatus(order.Ready, t2))
		require.NoError(t, o.TransitionStatus(order.Preparing, t3))

		timeline := o.Timeline()
		assert.Equal(t, []string{"Awaiting", "Preparing", "Ready"}, timeline.Keys())

		preparing, _ := timeline.Get("Preparing")
		assert.Equal(t, t3, preparing.Start)
		assert.Nil(t, preparing.End)

		ready, _ := timeline.Get("Ready")
		require.NotNil(t, ready.End)
		assert.Equal(t, t3, *ready.End)
		assert.Equal(t, []string{"Preparing"}, timeline.OpenKeys())
	})
}

func TestOrder_MarkPaid(t *testing.T) {
	t.Run("should record parallel Received marker without closing current interval", func(t *testing.T) {
		o, err := order.NewOrder(validDetails(), baseTime)
		require.NoError(t, err)
		t1 := baseTime.Add(time.Minute)
		require.NoError(t, o.TransitionStatus(order.Preparing, t1))
		paidAt := baseTime.Add(90 * time.Second)

		o.MarkPaid(paidAt)

		assert.True(t, o.Paid())
		require.NotNil(t, o.ReceivedTime())
		assert.Equal(t, paidAt, *o.ReceivedTime())
		assert.Equal(t, order.Preparing, o.Status())

		timeline := o.Timeline()
		received, ok := timeline.Get(order.ReceivedKey)
		require.True(t, ok)
		assert.Equal(t, paidAt, received.Start)
		assert.Nil(t, received.End)

		// The current status interval stays open alongside the marker.
		assert.ElementsMatch(t, []string{"Preparing", order.ReceivedKey}, timeline.OpenKeys())
	})

	t.Run("should overwrite marker when confirmed twice", func(t *testing.T) {
		o, err := order.NewOrder(validDetails(), baseTime)
		require.NoError(t, err)
		first := baseTime.Add(time.Minute)
		second := baseTime.Add(2 * time.Minute)

		o.MarkPaid(first)
		o.MarkPaid(second)

		assert.Equal(t, second, *o.ReceivedTime())
		received, _ := o.Timeline().Get(order.ReceivedKey)
		assert.Equal(t, second, received.Start)
		assert.Equal(t, 2, o.Timeline().Len())
	})

	t.Run("should survive later transitions untouched", func(t *testing.T) {
		o, err := order.NewOrder(validDetails(), baseTime)
		require.NoError(t, err)
		paidAt := baseTime.Add(time.Minute)
		o.MarkPaid(paidAt)

		require.NoError(t, o.TransitionStatus(order.Preparing, baseTime.Add(2*time.Minute)))
		require.NoError(t, o.TransitionStatus(order.Delivered, baseTime.Add(3*time.Minute)))

		received, ok := o.Timeline().Get(order.ReceivedKey)
		require.True(t, ok)
		assert.Equal(t, paidAt, received.Start)
		assert.Nil(t, received.End)
		assert.True(t, o.Paid())
	})
}

func TestOrder_Durations(t *testing.T) {
	t.Run("should report dwell times across the lifecycle", func(t *testing.T) {
		o, err := order.NewOrder(validDetails(), baseTime)
		require.NoError(t, err)
		require.NoError(t, o.TransitionStatus(order.Preparing, baseTime.Add(3*time.Minute)))
		o.MarkPaid(baseTime.Add(4 * time.Minute))

		durations := o.Durations(baseTime.Add(5*time.Minute + 30*time.Second))

		require.Len(t, durations, 2)
		assert.Equal(t, "Awaiting", durations[0].Key)
		assert.Equal(t, 3, durations[0].Minutes)
		assert.Equal(t, 0, durations[0].Seconds)
		assert.Equal(t, "Preparing", durations[1].Key)
		assert.Equal(t, 2, durations[1].Minutes)
		assert.Equal(t, 30, durations[1].Seconds)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should rehydrate a persisted order", func(t *testing.T) {
		timeline := order.NewTimeline("Awaiting", baseTime)
		timeline.CloseOpen("Awaiting", baseTime.Add(time.Minute))
		timeline.Record("Preparing", order.Interval{Start: baseTime.Add(time.Minute)})
		paidAt := baseTime.Add(2 * time.Minute)
		timeline.Record(order.ReceivedKey, order.Interval{Start: paidAt})

		o, err := order.RestoreOrder(7, validDetails(), order.State{
			Status:       order.Preparing,
			Timeline:     timeline,
			Paid:         true,
			ReceivedTime: &paidAt,
			PlacedAt:     baseTime,
		})

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, int64(7), o.ID())
		assert.Equal(t, order.Preparing, o.Status())
		assert.True(t, o.Paid())
		assert.Equal(t, timeline.Keys(), o.Timeline().Keys())
	})

	t.Run("should reject an out-of-enumeration status", func(t *testing.T) {
		o, err := order.RestoreOrder(7, validDetails(), order.State{
			Status:   order.Status(99),
			Timeline: order.NewTimeline("Awaiting", baseTime),
			PlacedAt: baseTime,
		})

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_ApplyDetails(t *testing.T) {
	t.Run("should replace descriptive fields", func(t *testing.T) {
		o, err := order.NewOrder(validDetails(), baseTime)
		require.NoError(t, err)
		require.NoError(t, o.TransitionStatus(order.Preparing, baseTime.Add(time.Minute)))

		updated := validDetails()
		updated.Address = "Avenida Central, 456"
		updated.Notes = "no onions"

		require.NoError(t, o.ApplyDetails(updated))

		assert.Equal(t, "Avenida Central, 456", o.Details().Address)
		assert.Equal(t, "no onions", o.Details().Notes)
		assert.Equal(t, order.Preparing, o.Status(), "lifecycle state must not move on detail updates")
	})

	t.Run("should keep previous details on invalid update", func(t *testing.T) {
		o, err := order.NewOrder(validDetails(), baseTime)
		require.NoError(t, err)

		bad := validDetails()
		bad.CustomerName = ""

		require.Error(t, o.ApplyDetails(bad))
		assert.Equal(t, "Maria Silva", o.Details().CustomerName)
	})
}

func TestOrder_TotalWithDelivery(t *testing.T) {
	o, err := order.NewOrder(validDetails(), baseTime)
	require.NoError(t, err)

	assert.InDelta(t, 59.80, o.TotalWithDelivery(), 1e-9)
}

func TestOrder_TotalDerivedFromItemsWhenOmitted(t *testing.T) {
	details := validDetails()
	details.Total = 0
	details.Items = []order.Item{
		{Name: "Classic Burger", Quantity: 2, Price: 25.90},
		{Name: "Fries", Quantity: 1, Price: 9.50},
	}

	o, err := order.NewOrder(details, baseTime)
	require.NoError(t, err)

	assert.InDelta(t, 61.30, o.Details().Total, 1e-9)
}

func TestOrder_IsEqual(t *testing.T) {
	a, err := order.NewOrder(validDetails(), baseTime)
	require.NoError(t, err)
	b, err := order.NewOrder(validDetails(), baseTime)
	require.NoError(t, err)

	assert.False(t, a.IsEqual(b), "unassigned orders are never equal")
	assert.False(t, a.IsEqual(nil))

	require.NoError(t, a.AssignID(1))
	require.NoError(t, b.AssignID(1))
	assert.True(t, a.IsEqual(b))
}
