package notation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/corvidchess/corvid/engine"
)

// moveTextPattern implements the move-interface grammar:
//
//	(O-O|O-O-O) | [kqrbnp] <from-sq> x? <to-sq> (= [qrbn])? [+#]?
//
// The piece letter is always lowercase regardless of the mover's
// color; the trailing check/mate marker is accepted but ignored since
// it is derivable from the resulting position.
var moveTextPattern = regexp.MustCompile(`^(O-O-O|O-O)$|^([kqrbnp])([a-h][1-8])(x)?([a-h][1-8])(?:=([qrbn]))?[+#]?$`)

var moveTextKindLetter = map[engine.PieceKind]byte{
	engine.King:   'k',
	engine.Queen:  'q',
	engine.Rook:   'r',
	engine.Bishop: 'b',
	engine.Knight: 'n',
	engine.Pawn:   'p',
}

var moveTextLetterKind = map[byte]engine.PieceKind{
	'k': engine.King,
	'q': engine.Queen,
	'r': engine.Rook,
	'b': engine.Bishop,
	'n': engine.Knight,
	'p': engine.Pawn,
}

// ParseMove translates move text into one of the pseudo-legal moves
// available in bs, per spec.md §6. The caller is responsible for
// legality-filtering the result (engine.MoveLeavesOwnKingInCheck).
func ParseMove(bs *engine.BoardState, text string) (engine.Move, error) {
	text = strings.TrimSpace(text)
	m := moveTextPattern.FindStringSubmatch(text)
	if m == nil {
		return engine.Move{}, fmt.Errorf("%w: %q does not match move grammar", engine.ErrIllegalMoveInput, text)
	}

	var candidates []engine.Move
	engine.GenerateMoves(bs, false, &candidates)

	if m[1] != "" {
		kingside := m[1] == "O-O"
		for _, cand := range candidates {
			if cand.Type() == engine.Castling && isCastlingKingside(cand) == kingside {
				return cand, nil
			}
		}
		return engine.Move{}, fmt.Errorf("%w: no legal %s available", engine.ErrIllegalMoveInput, m[1])
	}

	kind, ok := moveTextLetterKind[m[2][0]]
	if !ok {
		return engine.Move{}, fmt.Errorf("%w: unknown piece letter %q", engine.ErrIllegalMoveInput, m[2])
	}
	from, err := engine.SquareFromString(m[3])
	if err != nil {
		return engine.Move{}, err
	}
	to, err := engine.SquareFromString(m[5])
	if err != nil {
		return engine.Move{}, err
	}
	wantCapture := m[4] == "x"

	var promoKind engine.PieceKind
	if m[6] != "" {
		promoKind = moveTextLetterKind[m[6][0]]
	}

	for _, cand := range candidates {
		if cand.From != from || cand.To != to || cand.MovingPiece.Kind != kind {
			continue
		}
		if cand.IsCapture() != wantCapture {
			continue
		}
		if promoKind != engine.Empty && cand.PromotionKind != promoKind {
			continue
		}
		if promoKind == engine.Empty && cand.PromotionKind != engine.Empty {
			continue
		}
		return cand, nil
	}
	return engine.Move{}, fmt.Errorf("%w: %q is not a legal move", engine.ErrIllegalMoveInput, text)
}

func isCastlingKingside(m engine.Move) bool {
	return m.To.File == 6
}

// MoveText renders m in the grammar ParseMove accepts.
func MoveText(m engine.Move) string {
	switch m.Type() {
	case engine.Castling:
		if isCastlingKingside(m) {
			return "O-O"
		}
		return "O-O-O"
	}

	var sb strings.Builder
	sb.WriteByte(moveTextKindLetter[m.MovingPiece.Kind])
	sb.WriteString(m.From.String())
	if m.IsCapture() {
		sb.WriteByte('x')
	}
	sb.WriteString(m.To.String())
	if m.PromotionKind != engine.Empty {
		sb.WriteByte('=')
		sb.WriteByte(moveTextKindLetter[m.PromotionKind])
	}
	return sb.String()
}
