/*
Package calc parses and evaluates one line of integer arithmetic.

Grammar

	line       --> expression END ;
	expression --> primary ( OPERATOR expression' )* ;
	primary    --> NUMBER
	             | "(" expression ")" ;
	OPERATOR   --> "+" | "-" | "*" | "/" ;

expression' is an expression restricted to operators that bind tighter than
the operator before it. "*" and "/" bind tighter than "+" and "-", and
operators of the same precedence associate to the left:

	2+3*4   --> (2+(3*4))
	2-3-4   --> ((2-3)-4)
	(2+3)*4 --> ((2+3)*4)

Whitespace is ignored. Words made of letters and digits are scanned so the
parser can name them in its diagnostic, but they are never valid operands.
Any other character is reported and skipped.

Failures come in three groups:

  - a *LexicalError is reported for each skipped character and never fails
    the parse;
  - a *ParseError is reported and returned when the tokens do not form an
    expression;
  - a *RuntimeError is returned by Value when the tree cannot be computed,
    e.g. on division by zero.
*/
package calc
