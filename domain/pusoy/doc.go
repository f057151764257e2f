// Package pusoy implements hand ranking for Pusoy Dos.
//
// # Card values
//
// Every card has a game value in [1,52], rank-major with the Pusoy Dos rank
// order 3 < 4 < ... < K < A < 2 and suits Clubs < Spades < Hearts < Diamonds,
// so 3C is 1 and 2D is 52. A separate poker value orders cards the poker way
// and is used only to recognise straights.
//
// # Scores
//
// Classify maps a hand to one integer so that any two plays compare with a
// single comparison:
//
//	Single               1-52   game value
//	Pair               101-152  100 + highest game value
//	Three-of-a-kind    201-252  200 + highest game value
//	Four-card group    301-352  300 + highest game value
//	Straight           401-456  400 + highest poker value
//	Flush              501-552  500 + highest game value
//	Full house         601-652  600 + highest game value of the triple
//	Four-of-a-kind     701-752  700 + highest game value of the four
//	Straight flush     800+     800 + straight and flush scores over their bases
//
// A score of 0 means the cards are not a playable hand.
//
// # Withdrawal
//
// Hand.Withdraw pulls cards named by their two-character codes out of a
// player's hand, restoring the hand if any code is missing.
package pusoy
