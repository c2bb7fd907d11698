package game

import (
	"testing"
	"time"

	"manorfall/internal/domain/manor"
)

func TestMoveCardSeatsOccupant(t *testing.T) {
	e := newTestEngine(newTestClock())
	state := newTestGame(t, e)
	hearth := slotIDByKey(t, state, "great-hearth")

	next := move(e, state, state.HeroCardID, hearth)

	if next.Slots[hearth].OccupantID != state.HeroCardID {
		t.Fatal("hero should occupy the hearth")
	}
	if inHand(next, state.HeroCardID) {
		t.Fatal("hero should have left the hand")
	}
	card := next.Cards[state.HeroCardID]
	if card.Location.Area != manor.AreaSlot || card.Location.SlotID != hearth {
		t.Fatalf("hero location = %+v", card.Location)
	}
	requireLogContains(t, next, "settles into Great Hearth")
}

func TestMoveRejectsNonPersonaWhereOnlyPersonasSit(t *testing.T) {
	e := newTestEngine(newTestClock())
	state := newTestGame(t, e)
	hearth := slotIDByKey(t, state, "great-hearth")
	journal := giveCard(t, e, &state, manor.JournalKey)

	next := move(e, state, journal, hearth)

	if next.Slots[hearth].OccupantID != "" {
		t.Fatal("journal must not occupy a persona-only slot")
	}
	if !inHand(next, journal) {
		t.Fatal("refused card stays in hand")
	}
	requireLogContains(t, next, "has no place in")
}

func TestMoveIntoLockedSlotRefused(t *testing.T) {
	clock := newTestClock()
	e := newTestEngine(clock)
	state := newTestGame(t, e)
	hearth := slotIDByKey(t, state, "great-hearth")

	lockedUntil := testEpoch.Add(5 * time.Second)
	slot := state.Slots[hearth]
	slot.LockedUntil = &lockedUntil
	state.Slots[hearth] = slot

	next := move(e, state, state.HeroCardID, hearth)
	if next.Slots[hearth].OccupantID != "" {
		t.Fatal("locked slot must not seat cards")
	}
	requireLogContains(t, next, "busy for another 5s")
}

func TestMoveOutOfLockedSlotRefused(t *testing.T) {
	clock := newTestClock()
	e := newTestEngine(clock)
	state := newTestGame(t, e)
	hearth := slotIDByKey(t, state, "great-hearth")
	scullery := slotIDByKey(t, state, "scullery")

	state = move(e, state, state.HeroCardID, hearth)
	lockedUntil := testEpoch.Add(8 * time.Second)
	slot := state.Slots[hearth]
	slot.LockedUntil = &lockedUntil
	state.Slots[hearth] = slot

	next := move(e, state, state.HeroCardID, scullery)
	if next.Slots[hearth].OccupantID != state.HeroCardID {
		t.Fatal("hero must stay committed to the locked hearth")
	}
	if next.Slots[scullery].OccupantID != "" {
		t.Fatal("scullery must stay empty")
	}
	requireLogContains(t, next, "cannot leave Great Hearth")
}

func TestMoveSameSlotIsNoOp(t *testing.T) {
	e := newTestEngine(newTestClock())
	state := newTestGame(t, e)
	hearth := slotIDByKey(t, state, "great-hearth")

	state = move(e, state, state.HeroCardID, hearth)
	next := move(e, state, state.HeroCardID, hearth)
	requireLogContains(t, next, "is already there")
}

func TestJournalAssistsSeatedPersona(t *testing.T) {
	e := newTestEngine(newTestClock())
	state := newTestGame(t, e)
	study := slotIDByKey(t, state, "reading-room")
	journal := giveCard(t, e, &state, manor.JournalKey)

	state = move(e, state, state.HeroCardID, study)
	next := move(e, state, journal, study)

	slot := next.Slots[study]
	if slot.OccupantID != state.HeroCardID {
		t.Fatal("hero should keep the seat")
	}
	if slot.AssistantID != journal {
		t.Fatalf("journal should assist, got assistant %q", slot.AssistantID)
	}
	requireLogContains(t, next, "joins Reading Room")
}

func TestPersonaAssistsSeatedDream(t *testing.T) {
	e := newTestEngine(newTestClock())
	state := newTestGame(t, e)
	study := slotIDByKey(t, state, "reading-room")
	dream := giveCard(t, e, &state, manor.DreamKey)

	state = move(e, state, dream, study)
	next := move(e, state, state.HeroCardID, study)

	slot := next.Slots[study]
	if slot.OccupantID != dream {
		t.Fatal("dream should keep the seat")
	}
	if slot.AssistantID != state.HeroCardID {
		t.Fatalf("hero should assist the dream, got %q", slot.AssistantID)
	}
}

func TestJournalAttachesToDreamPair(t *testing.T) {
	e := newTestEngine(newTestClock())
	state := newTestGame(t, e)
	study := slotIDByKey(t, state, "reading-room")
	dream := giveCard(t, e, &state, manor.DreamKey)
	journal := giveCard(t, e, &state, manor.JournalKey)

	state = move(e, state, dream, study)
	state = move(e, state, state.HeroCardID, study)
	next := move(e, state, journal, study)

	slot := next.Slots[study]
	if slot.OccupantID != dream || slot.AssistantID != state.HeroCardID {
		t.Fatalf("dream pair disturbed: %+v", slot)
	}
	if len(slot.AttachedCardIDs) != 1 || slot.AttachedCardIDs[0] != journal {
		t.Fatalf("journal should attach, got %v", slot.AttachedCardIDs)
	}
}

func TestDreamTakesLeadOverSeatedJournal(t *testing.T) {
	e := newTestEngine(newTestClock())
	state := newTestGame(t, e)
	study := slotIDByKey(t, state, "reading-room")
	journal := giveCard(t, e, &state, manor.JournalKey)
	dream := giveCard(t, e, &state, manor.DreamKey)

	// Journal seated with the hero assisting; the arriving dream takes the
	// seat and the journal waits as an attachment.
	slot := state.Slots[study]
	slot.OccupantID = journal
	slot.AssistantID = state.HeroCardID
	state.Slots[study] = slot
	state.RemoveFromHand(journal)
	state.RemoveFromHand(state.HeroCardID)

	next := move(e, state, dream, study)
	got := next.Slots[study]
	if got.OccupantID != dream {
		t.Fatalf("dream should lead, got occupant %q", got.OccupantID)
	}
	if got.AssistantID != state.HeroCardID {
		t.Fatal("hero should keep assisting")
	}
	if len(got.AttachedCardIDs) != 1 || got.AttachedCardIDs[0] != journal {
		t.Fatalf("journal should wait attached, got %v", got.AttachedCardIDs)
	}
}

func TestDisplacementReturnsCompanyToHand(t *testing.T) {
	e := newTestEngine(newTestClock())
	state := newTestGame(t, e)
	hearth := slotIDByKey(t, state, "great-hearth")

	butler := manor.CardInstance{
		ID: "butler", Key: "butler", Name: "The Butler",
		Type: manor.CardPersona, Permanent: true,
		Location: manor.CardLocation{Area: manor.AreaHand},
	}
	state.Cards[butler.ID] = butler
	state.Hand = append(state.Hand, butler.ID)

	state = move(e, state, state.HeroCardID, hearth)
	next := move(e, state, butler.ID, hearth)

	if next.Slots[hearth].OccupantID != butler.ID {
		t.Fatal("butler should take the seat")
	}
	if !inHand(next, state.HeroCardID) {
		t.Fatal("displaced hero must land in hand, not be lost")
	}
	requireLogContains(t, next, "makes way in Great Hearth")
}

func TestRecallCard(t *testing.T) {
	clock := newTestClock()
	e := newTestEngine(clock)
	state := newTestGame(t, e)
	hearth := slotIDByKey(t, state, "great-hearth")
	state = move(e, state, state.HeroCardID, hearth)

	lockedUntil := testEpoch.Add(3 * time.Second)
	slot := state.Slots[hearth]
	slot.LockedUntil = &lockedUntil
	state.Slots[hearth] = slot

	next := e.Reduce(state, Action{Type: ActionRecallCard, CardID: state.HeroCardID})
	if next.Slots[hearth].OccupantID != state.HeroCardID {
		t.Fatal("recall must refuse while the slot is locked")
	}

	clock.Advance(4 * time.Second)
	next = e.Reduce(state, Action{Type: ActionRecallCard, CardID: state.HeroCardID})
	if next.Slots[hearth].OccupantID != "" {
		t.Fatal("recall should empty the slot once unlocked")
	}
	if !inHand(next, state.HeroCardID) {
		t.Fatal("recalled card lands in hand")
	}
	requireLogContains(t, next, "returns to hand")
}
