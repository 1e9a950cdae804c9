package cash

import (
	"testing"

	"github.com/covenant-labs/covenant/coin"
	"github.com/covenant-labs/covenant/covtest"
	"github.com/covenant-labs/covenant/errors"
	"github.com/covenant-labs/covenant/store"
	. "github.com/smartystreets/goconvey/convey"
)

func TestController(t *testing.T) {
	Convey("Test moving coins between wallets", t, func() {
		alice := covtest.NewCondition().Address()
		bob := covtest.NewCondition().Address()

		db := store.MemStore()
		bucket := NewBucket()
		ctrl := NewController(bucket)

		w, err := WalletWith(alice, coin.NewCoin(100, "GAS"))
		So(err, ShouldBeNil)
		So(bucket.Save(db, w), ShouldBeNil)

		Convey("Moving funds we hold succeeds", func() {
			err := ctrl.MoveCoins(db, alice, bob, coin.NewCoin(40, "GAS"))
			So(err, ShouldBeNil)

			got, err := ctrl.Balance(db, alice)
			So(err, ShouldBeNil)
			So(got.Coin("GAS").Amount, ShouldEqual, 60)

			got, err = ctrl.Balance(db, bob)
			So(err, ShouldBeNil)
			So(got.Coin("GAS").Amount, ShouldEqual, 40)
		})

		Convey("Moving more than held fails without any change", func() {
			err := ctrl.MoveCoins(db, alice, bob, coin.NewCoin(101, "GAS"))
			So(errors.ErrInsufficientAmount.Is(err), ShouldBeTrue)

			got, err := ctrl.Balance(db, alice)
			So(err, ShouldBeNil)
			So(got.Coin("GAS").Amount, ShouldEqual, 100)
		})

		Convey("Moving from an unknown account fails", func() {
			err := ctrl.MoveCoins(db, bob, alice, coin.NewCoin(1, "GAS"))
			So(errors.ErrEmpty.Is(err), ShouldBeTrue)
		})

		Convey("Non-positive amounts are rejected", func() {
			err := ctrl.MoveCoins(db, alice, bob, coin.NewCoin(0, "GAS"))
			So(errors.ErrAmount.Is(err), ShouldBeTrue)

			err = ctrl.MoveCoins(db, alice, bob, coin.NewCoin(-4, "GAS"))
			So(errors.ErrAmount.Is(err), ShouldBeTrue)
		})

		Convey("Unknown accounts report an empty balance", func() {
			got, err := ctrl.Balance(db, bob)
			So(err, ShouldBeNil)
			So(len(got), ShouldEqual, 0)
		})

		Convey("Minting adds funds from thin air", func() {
			So(ctrl.CoinMint(db, bob, coin.NewCoin(7, "GAS")), ShouldBeNil)
			got, err := ctrl.Balance(db, bob)
			So(err, ShouldBeNil)
			So(got.Coin("GAS").Amount, ShouldEqual, 7)
		})
	})
}
