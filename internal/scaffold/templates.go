package scaffold

// Starter configuration written by `bookforge init` when no
// bookforge.yaml exists yet.
var configTemplate = `book: Methods of Applied Mathematics
model: gpt-5.1
max-rounds: 3

chapters:
  - title: Linear Algebra and Matrix Methods
    file: linear-algebra.tex
    sections:
      - Eigenvalues and Eigenvectors
      - Diagonalization and Matrix Functions

  - title: Ordinary Differential Equations
    file: odes.tex
    sections:
      - First-Order Equations
      - Linear Systems and Stability
`

var mainTexHeader = `%========================================
%  Classical Math Textbook Template
%========================================
\documentclass[12pt,oneside]{book}

%----------------------------------------
% Encoding, language, fonts
%----------------------------------------
\usepackage[utf8]{inputenc}
\usepackage[T1]{fontenc}
\usepackage[english]{babel}
\usepackage{lmodern}
\usepackage{microtype}

%----------------------------------------
% Page layout
%----------------------------------------
\usepackage{geometry}
\geometry{
  a4paper,
  margin=1in
}

\usepackage{setspace}
\onehalfspacing

%----------------------------------------
% Math packages
%----------------------------------------
\usepackage{amsmath,amssymb,amsthm}
\usepackage{mathtools}

\numberwithin{equation}{chapter}

% Common shortcuts
\newcommand{\R}{\mathbb{R}}
\newcommand{\C}{\mathbb{C}}
\newcommand{\N}{\mathbb{N}}
\newcommand{\Z}{\mathbb{Z}}
\newcommand{\dd}{\,\mathrm{d}}

%----------------------------------------
% Theorem environments
%----------------------------------------
\theoremstyle{plain}
\newtheorem{theorem}{Theorem}[chapter]
\newtheorem{lemma}[theorem]{Lemma}
\newtheorem{proposition}[theorem]{Proposition}
\newtheorem{corollary}[theorem]{Corollary}

\theoremstyle{definition}
\newtheorem{definition}[theorem]{Definition}
\newtheorem{example}[theorem]{Example}
\newtheorem{exercise}[theorem]{Exercise}

\theoremstyle{remark}
\newtheorem{remark}[theorem]{Remark}

%----------------------------------------
% Figures
%----------------------------------------
\usepackage{graphicx}
\graphicspath{{figures/}}
`

var mainTexFooter = `
\chapter{Exams and Sample Problems}

\include{exams/exam1}
% TODO: add \include{exams/exam2}, \include{exams/exam3}, etc.

\chapter*{Summary of Topics and Problem Map}
\addcontentsline{toc}{chapter}{Summary of Topics and Problem Map}

% TODO: summarize which chapters cover which exam problems.

\end{document}
`

var makefileTemplate = `MAIN=main
LATEX=pdflatex

.PHONY: all pdf clean

all: pdf

pdf:
	$(LATEX) $(MAIN).tex
	$(LATEX) $(MAIN).tex

clean:
	rm -f $(MAIN).aux $(MAIN).log $(MAIN).out $(MAIN).toc \
	       $(MAIN).bbl $(MAIN).blg $(MAIN).lof $(MAIN).lot
`

var workflowTemplate = `name: Build LaTeX

on:
  push:
    branches: [ main, master ]
  pull_request:

jobs:
  build:
    runs-on: ubuntu-latest

    steps:
      - name: Checkout repository
        uses: actions/checkout@v4

      - name: Install TeX Live
        run: |
          sudo apt-get update
          sudo apt-get install -y \
            texlive-latex-recommended \
            texlive-latex-extra \
            texlive-fonts-recommended

      - name: Build main.pdf
        run: |
          pdflatex main.tex
          pdflatex main.tex

      - name: Upload PDF artifact
        uses: actions/upload-artifact@v4
        with:
          name: book-pdf
          path: main.pdf
`

var examTemplate = `\section*{Exam 1 -- Sample Problems}

% TODO: paste or summarize the original exam statement here.

\begin{exercise}
Let $A \in \R^{n \times n}$ be symmetric. Show that all eigenvalues of
$A$ are real and that eigenvectors belonging to distinct eigenvalues
are orthogonal.
\end{exercise}

\begin{exercise}
Solve the initial value problem
\[
  y' + 2y = e^{-t}, \qquad y(0) = 1,
\]
and describe the behavior of the solution as $t \to \infty$.
\end{exercise}
`
