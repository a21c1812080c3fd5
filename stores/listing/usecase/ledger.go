package usecase

import (
	"sort"
	"time"

	"github.com/x-xyz/marketcore/domain"
	"github.com/x-xyz/marketcore/domain/event"
	"github.com/x-xyz/marketcore/domain/listing"
)

type assetKey struct {
	token   domain.Address
	tokenId domain.TokenId
}

type ownerKey struct {
	assetKey
	owner domain.Address
}

func keyOf(l *listing.SaleListing) assetKey {
	return assetKey{token: l.Token, tokenId: l.TokenId}
}

// ledger is the in memory state of the market. Stored records are never
// mutated in place: every write replaces them with a fresh copy, which lets
// the undo log keep the previous pointer.
type ledger struct {
	nextIndex uint64
	listings  map[uint64]*listing.SaleListing
	bids      map[uint64]*listing.HighestBid

	// ERC-721 asset -> listing index
	byAsset map[assetKey]uint64
	// ERC-1155 aggregates per owner, and the owners of an asset in listing order
	slices map[ownerKey]*listing.OwnerSlice
	owners map[assetKey][]domain.Address
	// sorted indices of fixed sale and auction listings
	fixed    []uint64
	auctions []uint64
}

func newLedger() *ledger {
	return &ledger{
		nextIndex: 1,
		listings:  make(map[uint64]*listing.SaleListing),
		bids:      make(map[uint64]*listing.HighestBid),
		byAsset:   make(map[assetKey]uint64),
		slices:    make(map[ownerKey]*listing.OwnerSlice),
		owners:    make(map[assetKey][]domain.Address),
		fixed:     []uint64{},
		auctions:  []uint64{},
	}
}

func (l *ledger) load(snap *listing.Snapshot) {
	if snap.NextIndex > l.nextIndex {
		l.nextIndex = snap.NextIndex
	}
	for _, sl := range snap.Listings {
		if sl.IsNone() {
			continue
		}
		l.listings[sl.Index] = sl
		l.reindex(nil, sl)
		if sl.Index >= l.nextIndex {
			l.nextIndex = sl.Index + 1
		}
	}
	for _, b := range snap.Bids {
		if _, ok := l.listings[b.Index]; ok {
			l.bids[b.Index] = b
		}
	}
}

// reindex moves the secondary indices from prev to next. Either may be nil.
// Replacing a listing by one of the same asset, owner and kind only adjusts
// the aggregate quantity so the owner keeps its position.
func (l *ledger) reindex(prev, next *listing.SaleListing) {
	if prev != nil && next != nil && keyOf(prev) == keyOf(next) && prev.Owner == next.Owner && prev.Kind == next.Kind {
		if next.Standard == domain.TokenType1155 {
			s := l.slices[ownerKey{keyOf(next), next.Owner}]
			s.TotalQuantity = s.TotalQuantity - prev.Quantity + next.Quantity
		}
		return
	}
	if prev != nil {
		l.unindex(prev)
	}
	if next != nil {
		l.index(next)
	}
}

func (l *ledger) index(sl *listing.SaleListing) {
	key := keyOf(sl)
	switch sl.Standard {
	case domain.TokenType721:
		l.byAsset[key] = sl.Index
	case domain.TokenType1155:
		sk := ownerKey{key, sl.Owner}
		s, found := l.slices[sk]
		if !found {
			s = &listing.OwnerSlice{Indices: []uint64{}}
			l.slices[sk] = s
			l.owners[key] = append(l.owners[key], sl.Owner)
		}
		s.TotalQuantity += sl.Quantity
		s.Indices = append(s.Indices, sl.Index)
	}
	if kind := l.byKind(sl.Kind); kind != nil {
		*kind = insertSorted(*kind, sl.Index)
	}
}

func (l *ledger) unindex(sl *listing.SaleListing) {
	key := keyOf(sl)
	switch sl.Standard {
	case domain.TokenType721:
		if l.byAsset[key] == sl.Index {
			delete(l.byAsset, key)
		}
	case domain.TokenType1155:
		sk := ownerKey{key, sl.Owner}
		if s, found := l.slices[sk]; found {
			s.TotalQuantity -= sl.Quantity
			s.Indices = removeValue(s.Indices, sl.Index)
			if len(s.Indices) == 0 {
				delete(l.slices, sk)
				l.owners[key] = removeAddress(l.owners[key], sl.Owner)
				if len(l.owners[key]) == 0 {
					delete(l.owners, key)
				}
			}
		}
	}
	if kind := l.byKind(sl.Kind); kind != nil {
		*kind = removeSorted(*kind, sl.Index)
	}
}

// byKind returns the sorted index holding listings of kind
func (l *ledger) byKind(kind listing.Kind) *[]uint64 {
	switch kind {
	case listing.KindFixedSale:
		return &l.fixed
	case listing.KindAuctionSale:
		return &l.auctions
	}
	return nil
}

// capture returns a func restoring every index entry touching the asset and
// owner of sl to its current state
func (l *ledger) capture(sl *listing.SaleListing) func() {
	key := keyOf(sl)
	sk := ownerKey{key, sl.Owner}

	byAsset, hadAsset := l.byAsset[key]
	var slice *listing.OwnerSlice
	if s, found := l.slices[sk]; found {
		slice = s.Clone()
	}
	owners, hadOwners := l.owners[key]
	owners = append([]domain.Address{}, owners...)
	wasFixed := containsSorted(l.fixed, sl.Index)
	wasAuction := containsSorted(l.auctions, sl.Index)

	return func() {
		if hadAsset {
			l.byAsset[key] = byAsset
		} else {
			delete(l.byAsset, key)
		}
		if slice != nil {
			l.slices[sk] = slice.Clone()
		} else {
			delete(l.slices, sk)
		}
		if hadOwners {
			l.owners[key] = append([]domain.Address{}, owners...)
		} else {
			delete(l.owners, key)
		}
		l.fixed = restoreSorted(l.fixed, sl.Index, wasFixed)
		l.auctions = restoreSorted(l.auctions, sl.Index, wasAuction)
	}
}

// escrowed sums the units the market holds for the auctions of owner on key
func (l *ledger) escrowed(key assetKey, owner domain.Address) uint64 {
	s, ok := l.slices[ownerKey{key, owner}]
	if !ok {
		return 0
	}
	res := uint64(0)
	for _, index := range s.Indices {
		if b, ok := l.bids[index]; ok && b.Escrowed {
			res += l.listings[index].Quantity
		}
	}
	return res
}

// sortedIndices returns every listing in ascending order
func (l *ledger) sortedIndices() []uint64 {
	res := make([]uint64, 0, len(l.fixed)+len(l.auctions))
	res = append(res, l.fixed...)
	res = append(res, l.auctions...)
	sort.Slice(res, func(i, j int) bool { return res[i] < res[j] })
	return res
}

// assetIndices returns every listing of key in ascending order
func (l *ledger) assetIndices(key assetKey) []uint64 {
	res := []uint64{}
	if index, ok := l.byAsset[key]; ok {
		res = append(res, index)
	}
	for _, owner := range l.owners[key] {
		res = append(res, l.slices[ownerKey{key, owner}].Indices...)
	}
	sort.Slice(res, func(i, j int) bool { return res[i] < res[j] })
	return res
}

type compensation struct {
	name string
	run  func() error
}

// txn collects the changes one operation makes to the ledger so they can be
// persisted together or undone together
type txn struct {
	l   *ledger
	at  time.Time
	now int64

	undo          []func()
	compensations []compensation
	listings      map[uint64]struct{}
	bids          map[uint64]struct{}
	allocated     bool
	events        []*event.Event
}

func newTxn(l *ledger, at time.Time) *txn {
	return &txn{
		l:        l,
		at:       at,
		now:      at.Unix(),
		listings: make(map[uint64]struct{}),
		bids:     make(map[uint64]struct{}),
	}
}

func (t *txn) listing(index uint64) *listing.SaleListing {
	return t.l.listings[index]
}

func (t *txn) bid(index uint64) *listing.HighestBid {
	return t.l.bids[index]
}

func (t *txn) allocIndex() uint64 {
	index := t.l.nextIndex
	t.l.nextIndex++
	t.allocated = true
	t.undo = append(t.undo, func() { t.l.nextIndex-- })
	return index
}

// putListing stores sl, which must not be shared with the ledger
func (t *txn) putListing(sl *listing.SaleListing) {
	l := t.l
	prev, existed := l.listings[sl.Index]
	restore := l.capture(sl)
	if existed && (keyOf(prev) != keyOf(sl) || prev.Owner != sl.Owner) {
		restorePrev := l.capture(prev)
		restore = chain(restorePrev, restore)
	}

	l.listings[sl.Index] = sl
	l.reindex(prev, sl)
	t.listings[sl.Index] = struct{}{}

	t.undo = append(t.undo, func() {
		if existed {
			l.listings[sl.Index] = prev
		} else {
			delete(l.listings, sl.Index)
		}
		restore()
	})
}

func (t *txn) deleteListing(index uint64) {
	l := t.l
	prev, existed := l.listings[index]
	if !existed {
		return
	}
	restore := l.capture(prev)

	delete(l.listings, index)
	l.unindex(prev)
	t.listings[index] = struct{}{}

	t.undo = append(t.undo, func() {
		l.listings[index] = prev
		restore()
	})
}

// putBid stores b, which must not be shared with the ledger
func (t *txn) putBid(b *listing.HighestBid) {
	l := t.l
	prev, existed := l.bids[b.Index]

	l.bids[b.Index] = b
	t.bids[b.Index] = struct{}{}

	t.undo = append(t.undo, func() {
		if existed {
			l.bids[b.Index] = prev
		} else {
			delete(l.bids, b.Index)
		}
	})
}

func (t *txn) deleteBid(index uint64) {
	l := t.l
	prev, existed := l.bids[index]
	if !existed {
		return
	}

	delete(l.bids, index)
	t.bids[index] = struct{}{}

	t.undo = append(t.undo, func() { l.bids[index] = prev })
}

func (t *txn) emit(evt *event.Event) {
	t.events = append(t.events, evt)
}

// compensate registers the action reverting an interaction that succeeded
func (t *txn) compensate(name string, run func() error) {
	t.compensations = append(t.compensations, compensation{name: name, run: run})
}

func (t *txn) rollback() {
	for i := len(t.undo) - 1; i >= 0; i-- {
		t.undo[i]()
	}
	t.undo = nil
	t.events = nil
}

func (t *txn) dirtyListings() []uint64 {
	return sortedKeys(t.listings)
}

func (t *txn) dirtyBids() []uint64 {
	return sortedKeys(t.bids)
}

func chain(fns ...func()) func() {
	return func() {
		for i := len(fns) - 1; i >= 0; i-- {
			fns[i]()
		}
	}
}

func sortedKeys(m map[uint64]struct{}) []uint64 {
	res := make([]uint64, 0, len(m))
	for k := range m {
		res = append(res, k)
	}
	sort.Slice(res, func(i, j int) bool { return res[i] < res[j] })
	return res
}

func insertSorted(s []uint64, v uint64) []uint64 {
	i := sort.Search(len(s), func(i int) bool { return s[i] >= v })
	if i < len(s) && s[i] == v {
		return s
	}
	s = append(s, 0)
	copy(s[i+1:], s[i:])
	s[i] = v
	return s
}

func removeSorted(s []uint64, v uint64) []uint64 {
	i := sort.Search(len(s), func(i int) bool { return s[i] >= v })
	if i == len(s) || s[i] != v {
		return s
	}
	return append(s[:i], s[i+1:]...)
}

func containsSorted(s []uint64, v uint64) bool {
	i := sort.Search(len(s), func(i int) bool { return s[i] >= v })
	return i < len(s) && s[i] == v
}

// restoreSorted puts v back in s or takes it out, depending on present
func restoreSorted(s []uint64, v uint64, present bool) []uint64 {
	if present {
		return insertSorted(s, v)
	}
	return removeSorted(s, v)
}

func removeValue(s []uint64, v uint64) []uint64 {
	for i := range s {
		if s[i] == v {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}

func removeAddress(s []domain.Address, v domain.Address) []domain.Address {
	for i := range s {
		if s[i] == v {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}
