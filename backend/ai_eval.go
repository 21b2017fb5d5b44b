package main

// EvaluateBoard scores the position from perspective's point of view. The
// score is antisymmetric: EvaluateBoard(s, X) == -EvaluateBoard(s, O).
func EvaluateBoard(s *GameState, perspective Player, weights HeuristicConfig) int {
	score := 0

	if owner := statusOwner(s.Statuses[4]); owner == perspective {
		score += weights.CenterOwnedBonus
	} else if owner == -perspective {
		score -= weights.CenterOwnedBonus
	}

	for sb := 0; sb < subCount; sb++ {
		switch s.Statuses[sb] {
		case SmallWonX, SmallWonO:
			bonus := int(float64(weights.WonBoardBonus) * subBoardWeight(sb, weights))
			if statusOwner(s.Statuses[sb]) == perspective {
				score += bonus
			} else {
				score -= bonus
			}
		case SmallOngoing:
			score += subBoardPotential(&s.Board, sb, perspective)
		}
	}
	return score
}

func subBoardWeight(sb int, weights HeuristicConfig) float64 {
	if isCenterSubBoard(sb) {
		return weights.CenterBoardWeight
	}
	if isCornerSubBoard(sb) {
		return weights.CornerBoardWeight
	}
	return weights.EdgeBoardWeight
}

// subBoardPotential sums open-line scores inside one ongoing sub-board:
// 10^marks for each line the opponent has not contested, mirrored negative
// for the opponent's uncontested lines.
func subBoardPotential(b *Board, sb int, perspective Player) int {
	baseRow, baseCol := subBoardOrigin(sb)
	score := 0
	var line [subSpan]Cell
	for k := 0; k < subSpan; k++ {
		for d := 0; d < subSpan; d++ {
			line[d] = b.At(baseRow+k, baseCol+d)
		}
		score += evalLine(line, perspective)
		for d := 0; d < subSpan; d++ {
			line[d] = b.At(baseRow+d, baseCol+k)
		}
		score += evalLine(line, perspective)
	}
	for d := 0; d < subSpan; d++ {
		line[d] = b.At(baseRow+d, baseCol+d)
	}
	score += evalLine(line, perspective)
	for d := 0; d < subSpan; d++ {
		line[d] = b.At(baseRow+d, baseCol+subSpan-1-d)
	}
	score += evalLine(line, perspective)
	return score
}

var linePow = [subSpan + 1]int{1, 10, 100, 1000}

func evalLine(line [subSpan]Cell, perspective Player) int {
	mine := 0
	theirs := 0
	target := CellFromPlayer(perspective)
	for _, cell := range line {
		switch cell {
		case target:
			mine++
		case CellEmpty:
		default:
			theirs++
		}
	}
	if theirs == 0 && mine > 0 {
		return linePow[mine]
	}
	if mine == 0 && theirs > 0 {
		return -linePow[theirs]
	}
	return 0
}
