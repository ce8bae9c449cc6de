package notation

import "testing"

func TestParseMovePawnPush(t *testing.T) {
	bs, err := ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	m, err := ParseMove(bs, "pe2e4")
	if err != nil {
		t.Fatalf("ParseMove: %v", err)
	}
	if got := MoveText(m); got != "pe2e4" {
		t.Fatalf("MoveText round trip = %q, want %q", got, "pe2e4")
	}
}

func TestParseMoveCapture(t *testing.T) {
	// After 1.e4 d5 the e4 pawn can take on d5.
	bs, err := ParseFEN("rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2")
	if err != nil {
		t.Fatal(err)
	}
	m, err := ParseMove(bs, "pe4xd5")
	if err != nil {
		t.Fatalf("ParseMove: %v", err)
	}
	if MoveText(m) != "pe4xd5" {
		t.Fatalf("MoveText = %q, want pe4xd5", MoveText(m))
	}
}

func TestParseMoveCastling(t *testing.T) {
	bs, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	m, err := ParseMove(bs, "O-O")
	if err != nil {
		t.Fatalf("ParseMove(O-O): %v", err)
	}
	if MoveText(m) != "O-O" {
		t.Fatalf("MoveText = %q, want O-O", MoveText(m))
	}

	m, err = ParseMove(bs, "O-O-O")
	if err != nil {
		t.Fatalf("ParseMove(O-O-O): %v", err)
	}
	if MoveText(m) != "O-O-O" {
		t.Fatalf("MoveText = %q, want O-O-O", MoveText(m))
	}
}

func TestParseMovePromotion(t *testing.T) {
	bs, err := ParseFEN("8/P6k/8/8/8/8/7p/7K w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	m, err := ParseMove(bs, "pa7a8=q")
	if err != nil {
		t.Fatalf("ParseMove: %v", err)
	}
	if MoveText(m) != "pa7a8=q" {
		t.Fatalf("MoveText = %q, want pa7a8=q", MoveText(m))
	}
}

func TestParseMoveRejectsMalformedText(t *testing.T) {
	bs, err := ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ParseMove(bs, "e2-e4"); err == nil {
		t.Fatal("expected an error for algebraic notation with a dash")
	}
}
